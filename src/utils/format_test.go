package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0 seconds"},
		{45, "45 seconds"},
		{45.5, "45.5 seconds"},
		{60, "1 minutes"},
		{90, "1 minutes and 30 seconds"},
		{3599, "59 minutes and 59 seconds"},
		{3600, "1 hours"},
		{3661, "1 hours and 1 minutes and 1 seconds"},
		{7201, "2 hours and 1 seconds"},
		{7260, "2 hours and 1 minutes"},
		{90061.7, "25 hours and 1 minutes and 1 seconds"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDuration(c.seconds), "seconds=%v", c.seconds)
	}
}

func TestFormatHour12(t *testing.T) {
	assert.Equal(t, "noon", FormatHour12(12))
	assert.Equal(t, "1PM", FormatHour12(13))
	assert.Equal(t, "11PM", FormatHour12(23))
	assert.Equal(t, "9AM", FormatHour12(9))
	assert.Equal(t, "1AM", FormatHour12(1))
	// 0点保持历史输出
	assert.Equal(t, "0AM", FormatHour12(0))
}
