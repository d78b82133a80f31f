package querystring

import (
	"github.com/go-andiamo/gopt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func Test_entryOf(t *testing.T) {
	s := ""
	n := 3
	testCases := []struct {
		value    any
		expect   entry
		expectOk bool
	}{
		{nil, flagEntry, false},
		{(*string)(nil), flagEntry, false},
		{&s, valueEntry(""), true},
		{(*gopt.Optional[string])(nil), flagEntry, false},
		{gopt.Empty[string](), flagEntry, false},
		{gopt.Of[string](""), valueEntry(""), true},
		{decimal.NullDecimal{}, flagEntry, false},
		{decimal.NewNullDecimal(decimal.NewFromFloat(1.25)), valueEntry("1.25"), true},
		{"x", valueEntry("x"), true},
		{(*int)(nil), flagEntry, false},
		{(*float64)(nil), flagEntry, false},
		{&n, valueEntry("3"), true},
		{0, valueEntry("0"), true},
	}
	for i, tc := range testCases {
		e, ok := entryOf(tc.value)
		assert.Equal(t, tc.expectOk, ok, "test case #%d", i)
		assert.Equal(t, tc.expect, e, "test case #%d", i)
	}
}

func Test_formatValue(t *testing.T) {
	assert.Equal(t, "-9223372036854775808", formatValue(int64(math.MinInt64)))
	assert.Equal(t, "18446744073709551615", formatValue(uint64(math.MaxUint64)))
	assert.Equal(t, "0.1", formatValue(0.1))
	assert.Equal(t, "1e+21", formatValue(1e21))
	assert.Equal(t, "false", formatValue(false))
	assert.Equal(t, "3.14", formatValue(decimal.RequireFromString("3.140")))
	assert.Equal(t, "[1 2]", formatValue([]int{1, 2}))
}
