package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base, pow int64
		res       uint64
		ok        bool
	}{
		{10, 0, 1, true},
		{10, 2, 100, true},
		{10, 19, 10000000000000000000, true},
		{10, 20, 0, false},
		{2, 0, 1, true},
		{2, 63, 1 << 63, true},
		{2, 64, 0, false},
		{3, 4, 81, true},
		{3, 41, 0, false},
		{10, -1, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := Pow(uint64(test.base), test.pow)
			a.Equal(test.ok, ok)
			a.Equal(test.res, res)
		})
	}
}

func TestWrapPow(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base uint64
		pow  int64
		res  uint64
	}{
		{10, 3, 1000},
		{2, 64, 0},
		{2, 100, 0},
		{10, 20, 7766279631452241920}, // 1e20 mod 2^64
		{10, 64, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, WrapPow(test.base, test.pow))
		})
	}
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), AbsInt64(0))
	a.Equal(uint64(5), AbsInt64(-5))
	a.Equal(uint64(5), AbsInt64(5))
	a.Equal(uint64(1)<<63, AbsInt64(math.MinInt64))
	a.Equal(uint64(math.MaxInt64), AbsInt64(math.MaxInt64))
}

func TestInt64Sign(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Int64Sign(0))
	a.Equal(1, Int64Sign(42))
	a.Equal(-1, Int64Sign(math.MinInt64))
}

func BenchmarkWrapPow(b *testing.B) {
	var dummy uint64
	for i := 0; i < b.N; i++ {
		dummy += WrapPow(10, int64(i%40))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy%1000), "dummy_metric")
}
