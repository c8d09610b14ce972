package processor

import (
	"fmt"
	"strings"

	"BikeshareExplorer/src/config"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Filter 按月份与星期过滤，选择器为 "all" 时跳过该条件
// 结果可能为空表，这不是错误
func Filter(df dataframe.DataFrame, month, day string, vocab config.Vocabulary) (dataframe.DataFrame, error) {
	month = strings.ToLower(strings.TrimSpace(month))
	day = strings.ToLower(strings.TrimSpace(day))

	if month != config.All {
		m, ok := vocab.MonthNumber(month)
		if !ok {
			return df, fmt.Errorf("month %q: %w", month, config.ErrInvalidSelection)
		}
		df = df.Filter(dataframe.F{Colname: Month, Comparator: series.Eq, Comparando: m})
	}

	if day != config.All {
		d, ok := vocab.WeekdayIndex(day)
		if !ok {
			return df, fmt.Errorf("day %q: %w", day, config.ErrInvalidSelection)
		}
		df = df.Filter(dataframe.F{Colname: DayOfWeek, Comparator: series.Eq, Comparando: d})
	}

	if df.Err != nil {
		return df, fmt.Errorf("filter: %w", df.Err)
	}
	return df, nil
}
