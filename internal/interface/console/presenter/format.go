// Package presenter formats domain data for the line-oriented console.
// Presenters turn domain objects into the exact lines printed on stdout;
// they never read input and never write anywhere themselves.
package presenter

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat печатает число в кратчайшей точной форме.
// Целые значения получают суффикс ".0" (8 -> "8.0"), очень малые и очень
// большие значения печатаются в экспоненциальной записи (1e-05, 1e+16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatIntList печатает список в виде "[a, b, c]", пустой - "[]".
func FormatIntList[T ~int](values []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte(']')
	return sb.String()
}
