package utils

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var layouts = []string{"2006-01-02 15:04:05", "01/02/2006 15:04"}

func sample() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"2017-01-01 09:07:57", "06/23/2017 15:09"}, series.String, "Start Time"),
		series.New([]string{"Customer", "Subscriber"}, series.String, "User Type"),
	)
}

func TestHasColumnAndMissing(t *testing.T) {
	df := sample()
	assert.True(t, HasColumn(df, "User Type"))
	assert.False(t, HasColumn(df, "Gender"))
	assert.Equal(t, []string{"Gender", "Birth Year"}, MissingColumns(df, "Start Time", "Gender", "Birth Year"))
	assert.Nil(t, MissingColumns(df, "Start Time"))
}

func TestParseTimeLayouts(t *testing.T) {
	col := sample().Col("Start Time")

	first, err := ParseTime(col.Elem(0), layouts)
	require.NoError(t, err)
	assert.Equal(t, 9, first.Hour())

	second, err := ParseTime(col.Elem(1), layouts)
	require.NoError(t, err)
	assert.Equal(t, 6, int(second.Month()))
	assert.Equal(t, 15, second.Hour())

	bad := series.New([]string{"yesterday"}, series.String, "x")
	_, err = ParseTime(bad.Elem(0), layouts)
	assert.Error(t, err)
}

func TestDropColumns(t *testing.T) {
	df := DropColumns(sample(), "User Type", "hour")
	assert.Equal(t, []string{"Start Time"}, df.Names())

	same := DropColumns(sample(), "nothing")
	assert.Equal(t, 2, same.Ncol())
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]int{1, 2, 3}, 2))
	assert.False(t, Contains([]string{"a"}, "b"))
}
