package schema

import (
	"strconv"
	"strings"
)

// Value is a numeric cell after coercion. Missing values stay explicitly
// marked; they are never silently turned into zero.
type Value struct {
	Float64 float64 `json:"value"`
	Missing bool    `json:"missing,omitempty"`
}

// MissingValue is the canonical missing marker.
func MissingValue() Value {
	return Value{Missing: true}
}

// NumberOf wraps a present numeric value.
func NumberOf(f float64) Value {
	return Value{Float64: f}
}

// ParseNumber coerces a raw cell string to a numeric Value. Leading and
// trailing whitespace and thousand separators are tolerated; an empty or
// non-parseable cell yields the missing marker.
func ParseNumber(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return MissingValue()
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return MissingValue()
	}
	return NumberOf(f)
}

// ParseYear coerces a raw cell to an integer year. Values like "2021" and
// "2021.0" both parse; anything else reports false.
func ParseYear(raw string) (int, bool) {
	v := ParseNumber(raw)
	if v.Missing {
		return 0, false
	}
	year := int(v.Float64)
	if float64(year) != v.Float64 {
		return 0, false
	}
	return year, true
}
