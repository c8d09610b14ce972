package file

// 源数据列名
const (
	StartTime    = "Start Time"
	EndTime      = "End Time"
	TripDuration = "Trip Duration"
	StartStation = "Start Station"
	EndStation   = "End Station"
	UserType     = "User Type"
	Gender       = "Gender"
	BirthYear    = "Birth Year"
)

// RequiredColumns 每个城市数据都必须包含的列
var RequiredColumns = []string{StartTime, StartStation, EndStation, TripDuration, UserType}

// SourceColumns 原始数据中可能出现的全部列，按展示顺序
var SourceColumns = []string{StartTime, EndTime, TripDuration, StartStation, EndStation, UserType, Gender, BirthYear}
