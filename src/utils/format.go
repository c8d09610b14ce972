package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatDuration 把秒数转换成 "x hours and y minutes and z seconds" 形式
// 各分量对上一级单位做向下取整与取余，为0的余量省略
func FormatDuration(seconds float64) string {
	if seconds < 60 {
		return strconv.FormatFloat(seconds, 'f', -1, 64) + " seconds"
	}

	if seconds < 3600 {
		minutes := int(math.Floor(seconds / 60))
		secs := int(seconds - float64(minutes*60))
		val := fmt.Sprintf("%d minutes", minutes)
		if secs != 0 {
			val += fmt.Sprintf(" and %d seconds", secs)
		}
		return val
	}

	hours := int(math.Floor(seconds / 3600))
	minutes := int(math.Floor((seconds - float64(hours*3600)) / 60))
	secs := int(seconds - float64(minutes*60) - float64(hours*3600))
	val := fmt.Sprintf("%d hours", hours)
	if minutes != 0 {
		val += fmt.Sprintf(" and %d minutes", minutes)
	}
	if secs != 0 {
		val += fmt.Sprintf(" and %d seconds", secs)
	}
	return val
}

// FormatHour12 24小时制 -> 12小时制标签
// 注意: 0点输出 "0AM" 而不是 "12AM"，与历史输出保持一致
func FormatHour12(hour int) string {
	switch {
	case hour > 12:
		return fmt.Sprintf("%dPM", hour-12)
	case hour == 12:
		return "noon"
	default:
		return fmt.Sprintf("%dAM", hour)
	}
}
