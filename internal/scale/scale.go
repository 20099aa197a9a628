// Package scale parses values on the 1-10 scale shared by mood levels,
// ratings and emotion intensities.
package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Bounds of the scale, inclusive.
const (
	Min = 1
	Max = 10
)

// Number reads a JSON value the way a lenient client would send it: a JSON
// number, or a string holding one. Anything else is not numeric.
func Number(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Num, true
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// InRange reports whether v is numeric and within [min, max].
func InRange(v gjson.Result, min, max float64) bool {
	n, ok := Number(v)
	return ok && n >= min && n <= max
}

// Parse returns v if it is a number on the scale. Fractions are allowed.
func Parse(v gjson.Result) (float64, bool) {
	n, ok := Number(v)
	if !ok || n < Min || n > Max {
		return 0, false
	}
	return n, true
}

// Valid reports whether n lies on the scale.
func Valid(n float64) bool {
	return n >= Min && n <= Max
}
