// reader.go
package file

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"BikeshareExplorer/src/config"
	"BikeshareExplorer/src/storage"
	"BikeshareExplorer/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
	_ "modernc.org/sqlite"
)

// ErrDataUnavailable 数据源无法读取(文件缺失/损坏/缺列)
var ErrDataUnavailable = errors.New("data unavailable")

// SQLiteTable sqlite数据源中的行程表
const SQLiteTable = "trips"

// Loader 根据城市名加载行程数据
type Loader struct {
	cfg    *config.Config
	logger *storage.Logger
}

func NewLoader(cfg *config.Config, logger *storage.Logger) *Loader {
	if logger == nil {
		logger = storage.Discard()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Load 读取城市对应的数据文件
// 文件在本方法内打开并关闭，不跨会话持有
func (l *Loader) Load(city string) (dataframe.DataFrame, error) {
	path, ok := l.cfg.SourcePath(city)
	if !ok {
		return dataframe.DataFrame{}, fmt.Errorf("unknown city %q: %w", city, config.ErrInvalidSelection)
	}

	t1 := time.Now()
	df, err := ReadFile(path)
	if err != nil {
		l.logger.Errorf("加载 %s 失败: %v", city, err)
		return dataframe.DataFrame{}, err
	}
	l.logger.Infof("加载 %s (%s): %d行 %d列, 用时 %v", city, path, df.Nrow(), df.Ncol(), time.Since(t1))
	return df, nil
}

// ReadFile 按扩展名选择读取方式
func ReadFile(path string) (dataframe.DataFrame, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = readCSV(path)
	case ".xlsx":
		records, err = readXLSX(path)
	case ".db", ".sqlite", ".sqlite3":
		records, err = readSQLite(path)
	default:
		err = fmt.Errorf("unsupported source type %q", filepath.Ext(path))
	}
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %v: %w", path, err, ErrDataUnavailable)
	}

	df, err := recordsToDataFrame(records)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %v: %w", path, err, ErrDataUnavailable)
	}
	return df, nil
}

// recordsToDataFrame 第一行为表头
// 时长与出生年份按浮点读取，其余列一律按字符串
func recordsToDataFrame(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("no header row")
	}
	records = dropIndexColumn(records)

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			TripDuration: series.Float,
			BirthYear:    series.Float,
		}),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}

	if missing := utils.MissingColumns(df, RequiredColumns...); len(missing) > 0 {
		return dataframe.DataFrame{}, fmt.Errorf("missing columns %v", missing)
	}
	return df, nil
}

// dropIndexColumn 去掉导出时带出的无名索引列
func dropIndexColumn(records [][]string) [][]string {
	if len(records[0]) == 0 || strings.TrimSpace(records[0][0]) != "" {
		return records
	}
	out := make([][]string, len(records))
	for i, row := range records {
		if len(row) > 0 {
			out[i] = row[1:]
		}
	}
	return out
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return padRows(records), nil
}

// readXLSX 读取第一个工作表，第一行为表头
func readXLSX(path string) ([][]string, error) {
	// 1. 使用tealeg/xlsx打开Excel文件
	xlFile, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx open file: %w", err)
	}

	// 2. 获取第一个工作表
	if len(xlFile.Sheets) == 0 {
		return nil, fmt.Errorf("excel文件中没有工作表")
	}
	sheet := xlFile.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet.Name)
	}

	// 3. 逐行转成字符串
	records := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		values := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			values[i] = cell.String()
		}
		records = append(records, values)
	}
	return padRows(records), nil
}

// readSQLite 读取 trips 表全部数据
func readSQLite(path string) ([][]string, error) {
	// sql.Open 会创建不存在的文件，先确认文件存在
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + SQLiteTable)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", SQLiteTable, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := [][]string{cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", SQLiteTable, err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = sqlValueString(v)
		}
		records = append(records, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func sqlValueString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(val)
	}
}

// padRows 补齐短行，保证每行与表头等长
func padRows(records [][]string) [][]string {
	if len(records) == 0 {
		return records
	}
	width := len(records[0])
	for i, row := range records {
		switch {
		case len(row) < width:
			records[i] = append(row, make([]string, width-len(row))...)
		case len(row) > width:
			records[i] = row[:width]
		}
	}
	return records
}
