package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 结构体定义了应用程序的配置结构
type Config struct {
	DataDir     string            `json:"data_dir"`     // 城市数据文件所在目录
	Cities      map[string]string `json:"cities"`       // 城市名 -> 数据文件
	LogName     string            `json:"log_name"`     // 日志文件
	PageSize    int               `json:"page_size"`    // 原始数据每页行数
	TimeLayouts []string          `json:"time_layouts"` // Start Time 可接受的时间格式
}

// Vocabulary 月份与星期的固定词表
type Vocabulary struct {
	months   []string
	weekdays []string
}

// All 表示该维度不过滤
const All = "all"

// ErrInvalidSelection 城市/月份/星期不在词表内
var ErrInvalidSelection = errors.New("invalid selection")

var defaultLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04",
}

// Default 返回内置默认配置
func Default() *Config {
	return &Config{
		DataDir: "data",
		Cities: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		LogName:     "bikeshare.log",
		PageSize:    5,
		TimeLayouts: append([]string(nil), defaultLayouts...),
	}
}

// LoadConfig 按 默认值 -> json文件 -> 环境变量(.env) 的顺序加载配置
// json文件不存在时直接使用默认值
func LoadConfig(jsonFolder, jsonFile string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(jsonFolder, jsonFile)
	data, err := readFile(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	default:
		if err := parseConfig(data, cfg); err != nil {
			return nil, err
		}
	}

	// .env 不存在时忽略
	_ = godotenv.Load()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("无法读取文件 %s: %w", filePath, err)
	}
	return data, nil
}

// parseConfig 在默认值之上覆盖json中出现的字段
func parseConfig(data []byte, cfg *Config) error {
	var fc Config
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("解析Config失败: %w", err)
	}

	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if len(fc.Cities) > 0 {
		cfg.Cities = make(map[string]string, len(fc.Cities))
		for city, src := range fc.Cities {
			cfg.Cities[strings.ToLower(strings.TrimSpace(city))] = src
		}
	}
	if fc.LogName != "" {
		cfg.LogName = fc.LogName
	}
	if fc.PageSize != 0 {
		cfg.PageSize = fc.PageSize
	}
	if len(fc.TimeLayouts) > 0 {
		cfg.TimeLayouts = fc.TimeLayouts
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BIKESHARE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("BIKESHARE_LOG"); v != "" {
		cfg.LogName = v
	}
	if v := os.Getenv("BIKESHARE_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid BIKESHARE_PAGE_SIZE: %q", v)
		}
		cfg.PageSize = n
	}
	return nil
}

// Validate 一次性收集所有配置问题
func (c *Config) Validate() error {
	var errs []error
	if len(c.Cities) == 0 {
		errs = append(errs, fmt.Errorf("cities 不能为空"))
	}
	for city, src := range c.Cities {
		if city == "" || city == All {
			errs = append(errs, fmt.Errorf("非法城市名: %q", city))
		}
		if strings.TrimSpace(src) == "" {
			errs = append(errs, fmt.Errorf("城市 %s 没有数据文件", city))
		}
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size 必须大于0: %d", c.PageSize))
	}
	if len(c.TimeLayouts) == 0 {
		errs = append(errs, fmt.Errorf("time_layouts 不能为空"))
	}
	return combineErrors(errs)
}

func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	msg := "配置加载遇到错误:"
	for _, err := range errs {
		msg = fmt.Sprintf("%s\n- %v", msg, err)
	}
	return fmt.Errorf("%s", msg)
}

// CityNames 返回已配置城市(字母序)
func (c *Config) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for city := range c.Cities {
		names = append(names, city)
	}
	sort.Strings(names)
	return names
}

// SourcePath 解析城市对应的数据文件路径
func (c *Config) SourcePath(city string) (string, bool) {
	src, ok := c.Cities[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return "", false
	}
	if filepath.IsAbs(src) {
		return src, true
	}
	return filepath.Join(c.DataDir, src), true
}

// DefaultVocabulary 返回12个月与7天的词表，星期一为0
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		months: []string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		weekdays: []string{
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		},
	}
}

func (v Vocabulary) Months() []string   { return append([]string(nil), v.months...) }
func (v Vocabulary) Weekdays() []string { return append([]string(nil), v.weekdays...) }

// MonthNumber 月份名 -> 1..12
func (v Vocabulary) MonthNumber(name string) (int, bool) {
	i := indexOf(v.months, strings.ToLower(strings.TrimSpace(name)))
	return i + 1, i >= 0
}

// WeekdayIndex 星期名 -> 0..6
func (v Vocabulary) WeekdayIndex(name string) (int, bool) {
	i := indexOf(v.weekdays, strings.ToLower(strings.TrimSpace(name)))
	return i, i >= 0
}

func (v Vocabulary) MonthName(month int) string {
	if month < 1 || month > len(v.months) {
		return ""
	}
	return v.months[month-1]
}

func (v Vocabulary) WeekdayName(day int) string {
	if day < 0 || day >= len(v.weekdays) {
		return ""
	}
	return v.weekdays[day]
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
