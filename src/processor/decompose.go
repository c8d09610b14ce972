package processor

import (
	"errors"
	"fmt"

	"BikeshareExplorer/src/datasource/file"
	"BikeshareExplorer/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrMalformedTimestamp Start Time 无法解析
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// 由 Start Time 派生的列
const (
	Month     = "month"       // 1..12
	DayOfWeek = "day_of_week" // 0..6, 星期一为0
	Hour      = "hour"        // 0..23
)

// DerivedColumns 展示原始数据时需要去掉的列
var DerivedColumns = []string{Month, DayOfWeek, Hour}

// Decompose 解析 Start Time 并追加 month/day_of_week/hour 三列
// 任意一行解析失败则整体失败，不做部分加载
func Decompose(df dataframe.DataFrame, layouts []string) (dataframe.DataFrame, error) {
	if !utils.HasColumn(df, file.StartTime) {
		return df, fmt.Errorf("column %q not found: %w", file.StartTime, ErrMalformedTimestamp)
	}

	col := df.Col(file.StartTime)
	n := df.Nrow()
	months := make([]int, n)
	weekdays := make([]int, n)
	hours := make([]int, n)

	for i := 0; i < n; i++ {
		t, err := utils.ParseTime(col.Elem(i), layouts)
		if err != nil {
			return df, fmt.Errorf("row %d: %v: %w", i, err, ErrMalformedTimestamp)
		}
		months[i] = int(t.Month())
		weekdays[i] = (int(t.Weekday()) + 6) % 7
		hours[i] = t.Hour()
	}

	out := df.Mutate(series.New(months, series.Int, Month)).
		Mutate(series.New(weekdays, series.Int, DayOfWeek)).
		Mutate(series.New(hours, series.Int, Hour))
	if out.Err != nil {
		return df, fmt.Errorf("append derived columns: %w", out.Err)
	}
	return out, nil
}
