package console

import (
	"fmt"
	"strings"

	"BikeshareExplorer/src/config"
)

// Selection 一次会话的过滤条件
type Selection struct {
	City  string
	Month string
	Day   string
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ValidateCity 城市必须是已配置的城市之一
func ValidateCity(input string, cfg *config.Config) (string, error) {
	city := normalize(input)
	if _, ok := cfg.SourcePath(city); !ok {
		return "", fmt.Errorf("city %q: %w", input, config.ErrInvalidSelection)
	}
	return city, nil
}

// ValidateMonth 月份名或 "all"
func ValidateMonth(input string, vocab config.Vocabulary) (string, error) {
	month := normalize(input)
	if month == config.All {
		return month, nil
	}
	if _, ok := vocab.MonthNumber(month); !ok {
		return "", fmt.Errorf("month %q: %w", input, config.ErrInvalidSelection)
	}
	return month, nil
}

// ValidateDay 星期名或 "all"
func ValidateDay(input string, vocab config.Vocabulary) (string, error) {
	day := normalize(input)
	if day == config.All {
		return day, nil
	}
	if _, ok := vocab.WeekdayIndex(day); !ok {
		return "", fmt.Errorf("day %q: %w", input, config.ErrInvalidSelection)
	}
	return day, nil
}

// ValidateSelection 一次性校验三个条件，用于命令行参数
func ValidateSelection(sel Selection, cfg *config.Config, vocab config.Vocabulary) (Selection, error) {
	city, err := ValidateCity(sel.City, cfg)
	if err != nil {
		return Selection{}, err
	}
	month, err := ValidateMonth(sel.Month, vocab)
	if err != nil {
		return Selection{}, err
	}
	day, err := ValidateDay(sel.Day, vocab)
	if err != nil {
		return Selection{}, err
	}
	return Selection{City: city, Month: month, Day: day}, nil
}
