package playerstats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceCount(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int64
	}{
		{"nil", nil, 0},
		{"integer string", "42", 42},
		{"fraction string truncates", "3.9", 3},
		{"negative fraction truncates toward zero", "-3.9", -3},
		{"padded string", "  17 ", 17},
		{"exponent string", "1e3", 1000},
		{"float", 12.7, 12},
		{"int", 9, 9},
		{"json number", json.Number("150"), 150},
		{"empty string", "", 0},
		{"text", "n/a", 0},
		{"hex is not numeric", "0x1A", 0},
		{"bool is not numeric", true, 0},
		{"nan", math.NaN(), 0},
		{"overflow", "1e30", 0},
		{"slice", []any{1}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceCount(tc.raw))
		})
	}
}

func TestCoerceRate(t *testing.T) {
	numeric := []struct {
		raw  any
		want float64
	}{
		{".312", 0.312},
		{"0.3", 0.3},
		{0.0, 0},
		{"0", 0},
		{1, 1},
		{json.Number("0.875"), 0.875},
	}
	for _, tc := range numeric {
		got := CoerceRate(tc.raw)
		require.NotNil(t, got, "raw %v", tc.raw)
		assert.InDelta(t, tc.want, *got, 1e-9)
	}

	for _, raw := range []any{nil, "", "--", "Inf", "NaN", false, map[string]any{}} {
		assert.Nil(t, CoerceRate(raw), "raw %v", raw)
	}
}

func TestRoundRate(t *testing.T) {
	assert.Nil(t, RoundRate(nil))

	v := 0.31249
	got := RoundRate(&v)
	require.NotNil(t, got)
	assert.Equal(t, 0.312, *got)
}
