package processor

import (
	"strings"
	"time"

	"BikeshareExplorer/src/config"
	"BikeshareExplorer/src/datasource/file"
	"BikeshareExplorer/src/utils"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ItinerarySep 起点与终点拼接的分隔符
const ItinerarySep = " <-> "

var title = cases.Title(language.English)

// Schema 数据源提供的可选列
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// SchemaOf 根据列名判断可选列是否存在
func SchemaOf(df dataframe.DataFrame) Schema {
	return Schema{
		HasGender:    utils.HasColumn(df, file.Gender),
		HasBirthYear: utils.HasColumn(df, file.BirthYear),
	}
}

// TimeReport 最常见的出行时间
type TimeReport struct {
	NoData  bool
	Month   string
	Weekday string
	Hour    string
	Elapsed time.Duration
}

// StationReport 最热门的站点与线路
type StationReport struct {
	NoData       bool
	StartStation string
	EndStation   string
	Itinerary    string
	Elapsed      time.Duration
}

// DurationReport 行程时长合计与均值
type DurationReport struct {
	NoData       bool
	TotalSeconds float64
	MeanSeconds  float64
	Total        string
	Mean         string
	Elapsed      time.Duration
}

// BirthYearReport 出生年份统计
type BirthYearReport struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserReport 用户构成，Gender/BirthYear 仅在数据源提供时填充
type UserReport struct {
	NoData    bool
	UserTypes []CategoryCount
	Schema    Schema
	Genders   []CategoryCount
	BirthYear *BirthYearReport
	Elapsed   time.Duration
}

// Summary 四组统计
type Summary struct {
	Rows     int
	Time     TimeReport
	Station  StationReport
	Duration DurationReport
	User     UserReport
}

// Summarize 依次执行四组只读统计
func Summarize(df dataframe.DataFrame, vocab config.Vocabulary) Summary {
	return Summary{
		Rows:     df.Nrow(),
		Time:     TimeStats(df, vocab),
		Station:  StationStats(df),
		Duration: DurationStats(df),
		User:     UserStats(df, SchemaOf(df)),
	}
}

// TimeStats 最常见的月份、星期与小时
func TimeStats(df dataframe.DataFrame, vocab config.Vocabulary) TimeReport {
	start := time.Now()
	var r TimeReport

	month, okM := modeOf(df, Month)
	day, okD := modeOf(df, DayOfWeek)
	hour, okH := modeOf(df, Hour)
	if !okM || !okD || !okH {
		r.NoData = true
		r.Elapsed = time.Since(start)
		return r
	}

	r.Month = title.String(vocab.MonthName(month))
	r.Weekday = title.String(vocab.WeekdayName(day))
	r.Hour = utils.FormatHour12(hour)
	r.Elapsed = time.Since(start)
	return r
}

func modeOf(df dataframe.DataFrame, col string) (int, bool) {
	if df.Nrow() == 0 || !utils.HasColumn(df, col) {
		return 0, false
	}
	return IntMode(df.Col(col))
}

// StationStats 最常用的起点、终点以及起终点组合
func StationStats(df dataframe.DataFrame) StationReport {
	start := time.Now()
	var r StationReport

	if df.Nrow() == 0 {
		r.NoData = true
		r.Elapsed = time.Since(start)
		return r
	}

	startCol := df.Col(file.StartStation)
	endCol := df.Col(file.EndStation)

	var okS, okE, okT bool
	r.StartStation, okS = Mode(startCol)
	r.EndStation, okE = Mode(endCol)
	r.Itinerary, okT = mode(itineraries(startCol.Records(), endCol.Records()))
	r.NoData = !okS || !okE || !okT
	r.Elapsed = time.Since(start)
	return r
}

// itineraries 拼接起终点，任一端缺失的行不参与统计
func itineraries(starts, ends []string) []string {
	out := make([]string, 0, len(starts))
	for i := range starts {
		s, e := starts[i], ends[i]
		if isMissing(s) || isMissing(e) {
			continue
		}
		out = append(out, strings.Join([]string{s, e}, ItinerarySep))
	}
	return out
}

func isMissing(s string) bool {
	return s == "" || s == "NaN"
}

// DurationStats 行程时长的合计与均值
func DurationStats(df dataframe.DataFrame) DurationReport {
	start := time.Now()
	var r DurationReport

	if df.Nrow() == 0 {
		r.NoData = true
		r.Elapsed = time.Since(start)
		return r
	}

	values := floatValues(df.Col(file.TripDuration))
	if len(values) == 0 {
		r.NoData = true
		r.Elapsed = time.Since(start)
		return r
	}

	r.TotalSeconds = floats.Sum(values)
	r.MeanSeconds = stat.Mean(values, nil)
	r.Total = utils.FormatDuration(r.TotalSeconds)
	r.Mean = utils.FormatDuration(r.MeanSeconds)
	r.Elapsed = time.Since(start)
	return r
}

// UserStats 用户类型计数；性别与出生年份按数据源能力输出
func UserStats(df dataframe.DataFrame, schema Schema) UserReport {
	start := time.Now()
	r := UserReport{Schema: schema}

	if df.Nrow() == 0 {
		r.NoData = true
		r.Elapsed = time.Since(start)
		return r
	}

	r.UserTypes = ValueCounts(df.Col(file.UserType))

	if schema.HasGender {
		r.Genders = ValueCounts(df.Col(file.Gender))
	}

	if schema.HasBirthYear {
		years := floatValues(df.Col(file.BirthYear))
		if len(years) > 0 {
			common, _ := mode(years)
			r.BirthYear = &BirthYearReport{
				Earliest:   int(floats.Min(years)),
				MostRecent: int(floats.Max(years)),
				MostCommon: int(common),
			}
		}
	}

	r.Elapsed = time.Since(start)
	return r
}
