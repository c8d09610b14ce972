package processor

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"
)

// CategoryCount 某个取值及其出现次数
type CategoryCount struct {
	Value string
	Count int
}

// tally 计数并记录首次出现顺序
func tally[T comparable](values []T) ([]T, map[T]int) {
	counts := make(map[T]int)
	var order []T
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}
	return order, counts
}

// mode 出现次数最多的值，并列时取最先出现的
func mode[T comparable](values []T) (T, bool) {
	order, counts := tally(values)
	var (
		best  T
		bestN int
	)
	for _, v := range order {
		if counts[v] > bestN {
			best, bestN = v, counts[v]
		}
	}
	return best, bestN > 0
}

// stringValues 取出非NA、非空的字符串值
func stringValues(s series.Series) []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() || e.String() == "" {
			continue
		}
		out = append(out, e.String())
	}
	return out
}

// floatValues 取出非NaN的数值
func floatValues(s series.Series) []float64 {
	out := make([]float64, 0, s.Len())
	for _, f := range s.Float() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Mode 字符串列的众数，并列时取最先出现的值
func Mode(s series.Series) (string, bool) {
	return mode(stringValues(s))
}

// IntMode 整数列的众数
func IntMode(s series.Series) (int, bool) {
	values, err := s.Int()
	if err != nil {
		return 0, false
	}
	return mode(values)
}

// FloatMode 数值列的众数，忽略NaN
func FloatMode(s series.Series) (float64, bool) {
	return mode(floatValues(s))
}

// ValueCounts 按次数降序，次数相同按首次出现顺序
func ValueCounts(s series.Series) []CategoryCount {
	order, counts := tally(stringValues(s))
	out := make([]CategoryCount, len(order))
	for i, v := range order {
		out[i] = CategoryCount{Value: v, Count: counts[v]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
