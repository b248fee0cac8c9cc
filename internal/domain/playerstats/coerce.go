package playerstats

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CoerceCount converts a loosely typed source value into a counting stat.
// Numeric values (numbers or numeric strings) are truncated toward zero;
// anything else, including nil, becomes 0.
func CoerceCount(raw any) int64 {
	v, ok := numericValue(raw)
	if !ok {
		return 0
	}
	v = math.Trunc(v)
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return 0
	}
	return int64(v)
}

// CoerceRate converts a loosely typed source value into a rate stat.
// Non-numeric values, including nil, yield nil and never 0.
func CoerceRate(raw any) *float64 {
	v, ok := numericValue(raw)
	if !ok {
		return nil
	}
	return &v
}

func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		return parseNumeric(string(v))
	case string:
		return parseNumeric(v)
	default:
		return 0, false
	}
}

func parseNumeric(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if !numericPattern.MatchString(trimmed) {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return finite(v)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
