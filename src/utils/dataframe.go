package utils

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// 辅助函数：判断DataFrame是否有某列
func HasColumn(df dataframe.DataFrame, name string) bool {
	return Contains(df.Names(), name)
}

// MissingColumns 返回df中缺少的列
func MissingColumns(df dataframe.DataFrame, names ...string) []string {
	var missing []string
	for _, name := range names {
		if !HasColumn(df, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ParseTime 依次尝试layouts，返回第一个成功的结果
func ParseTime(s series.Element, layouts []string) (time.Time, error) {
	if s.IsNA() {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	str := s.String()
	for _, layout := range layouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time value %q", str)
}

// DropColumns 去掉存在的列，不存在的列忽略
func DropColumns(df dataframe.DataFrame, names ...string) dataframe.DataFrame {
	var present []string
	for _, name := range names {
		if HasColumn(df, name) {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return df
	}
	return df.Drop(present)
}
