// Package validate provides the numeric coercion primitives that gate all
// user-entered numbers (prices and quantities). They are total: malformed or
// negative input falls back to the given default instead of failing.
package validate

import (
	"math"
	"strconv"
	"strings"
)

// PositiveNumber parses raw as a float. Unparseable, NaN or negative input
// returns def. Valid values are returned unmodified, without rounding.
func PositiveNumber(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return def
	}
	return v
}

// PositiveInteger parses raw as a base-10 integer. Fractional input is
// truncated toward zero. Unparseable or negative input returns def.
func PositiveInteger(raw string, def int) int {
	s := strings.TrimSpace(raw)
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		v = int(f)
	}
	if v < 0 {
		return def
	}
	return v
}
