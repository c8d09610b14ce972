package file

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"BikeshareExplorer/src/config"
	"BikeshareExplorer/src/utils"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var tripHeader = []string{"", StartTime, EndTime, TripDuration, StartStation, EndStation, UserType, Gender, BirthYear}

var tripRows = [][]string{
	{"1423854", "2017-06-23 15:09:32", "2017-06-23 15:14:53", "321", "Wood St & Hubbard St", "Damen Ave & Chicago Ave", "Subscriber", "Male", "1992.0"},
	{"955915", "2017-05-25 18:19:03", "2017-05-25 18:45:53", "1610", "Theater on the Lake", "Sheffield Ave & Waveland Ave", "Subscriber", "Female", ""},
	{"9031", "2017-01-04 08:27:49", "2017-01-04 08:34:45", "416", "May St & Taylor St", "Wood St & Taylor St", "Customer", "", ""},
}

func writeCSV(t *testing.T, dir, name string, header []string, rows [][]string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(strings.Join(header, ",") + "\n")
	for _, r := range rows {
		b.WriteString(strings.Join(quoteAll(r), ",") + "\n")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func quoteAll(row []string) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = `"` + v + `"`
	}
	return out
}

func writeXLSX(t *testing.T, dir, name string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	all := append([][]string{tripHeader[1:]}, stripIndex(tripRows)...)
	for rowIdx, row := range all {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, val))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeSQLite(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE trips (
		"Start Time" TEXT, "End Time" TEXT, "Trip Duration" REAL,
		"Start Station" TEXT, "End Station" TEXT, "User Type" TEXT)`)
	require.NoError(t, err)
	for _, r := range tripRows {
		_, err = db.Exec(`INSERT INTO trips VALUES (?, ?, ?, ?, ?, ?)`, r[1], r[2], r[3], r[4], r[5], r[6])
		require.NoError(t, err)
	}
	return path
}

func stripIndex(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r[1:]
	}
	return out
}

func testConfig(dir string, cities map[string]string) *config.Config {
	cfg := config.Default()
	cfg.DataDir = dir
	cfg.Cities = cities
	return cfg
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "chicago.csv", tripHeader, tripRows)

	loader := NewLoader(testConfig(dir, map[string]string{"chicago": "chicago.csv"}), nil)
	df, err := loader.Load("Chicago")
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, tripHeader[1:], df.Names())
	assert.Equal(t, series.Float, df.Col(TripDuration).Type())
	assert.Equal(t, series.Float, df.Col(BirthYear).Type())
	assert.Equal(t, series.String, df.Col(StartStation).Type())
	assert.Equal(t, 1610.0, df.Col(TripDuration).Elem(1).Float())
	assert.True(t, df.Col(BirthYear).Elem(2).IsNA())
}

func TestLoadXLSX(t *testing.T) {
	dir := t.TempDir()
	writeXLSX(t, dir, "chicago.xlsx")

	df, err := ReadFile(filepath.Join(dir, "chicago.xlsx"))
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, "Theater on the Lake", df.Col(StartStation).Elem(1).String())
	assert.Equal(t, 321.0, df.Col(TripDuration).Elem(0).Float())
}

func TestLoadSQLite(t *testing.T) {
	dir := t.TempDir()
	writeSQLite(t, dir, "washington.db")

	loader := NewLoader(testConfig(dir, map[string]string{"washington": "washington.db"}), nil)
	df, err := loader.Load("washington")
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.False(t, utils.HasColumn(df, Gender))
	assert.Equal(t, 416.0, df.Col(TripDuration).Elem(2).Float())
	assert.Equal(t, "2017-01-04 08:27:49", df.Col(StartTime).Elem(2).String())
}

func TestLoadUnknownCity(t *testing.T) {
	loader := NewLoader(testConfig(t.TempDir(), map[string]string{"chicago": "chicago.csv"}), nil)
	_, err := loader.Load("paris")
	assert.True(t, errors.Is(err, config.ErrInvalidSelection))
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(testConfig(dir, map[string]string{"chicago": "chicago.csv", "dc": "dc.db"}), nil)

	_, err := loader.Load("chicago")
	assert.True(t, errors.Is(err, ErrDataUnavailable))

	_, err = loader.Load("dc")
	assert.True(t, errors.Is(err, ErrDataUnavailable))
	_, statErr := os.Stat(filepath.Join(dir, "dc.db"))
	assert.True(t, os.IsNotExist(statErr), "sqlite file must not be created")
}

func TestLoadMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "broken.csv", []string{StartTime, StartStation}, [][]string{{"2017-01-01 00:00:00", "A"}})

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataUnavailable))
	assert.Contains(t, err.Error(), "missing columns")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "trips.json"))
	assert.True(t, errors.Is(err, ErrDataUnavailable))
}

func TestPadRows(t *testing.T) {
	records := padRows([][]string{{"a", "b", "c"}, {"1"}, {"1", "2", "3", "4"}})
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1", "", ""}, {"1", "2", "3"}}, records)
}
