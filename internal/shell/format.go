package shell

import (
	"math"
	"strconv"
	"strings"
)

// Values at or beyond these magnitudes are shown in scientific notation
const (
	sciUpper = 1e6
	sciLower = 1e-3
)

// FormatValue renders a stack value. Non-zero values with |x| >= 1e6 or
// |x| < 1e-3 use scientific notation with the shortest mantissa, e.g.
// "1.5e7" or "2e-4"; everything else is plain decimal.
func FormatValue(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	abs := math.Abs(x)
	if x != 0 && (abs >= sciUpper || abs < sciLower) {
		return scientific(x)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// scientific drops the sign and zero padding strconv puts on the exponent
func scientific(x float64) string {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "e" + strconv.Itoa(n)
}

// FormatStack renders every value of stack, bottom first
func FormatStack(stack []float64) []string {
	out := make([]string, len(stack))
	for i, v := range stack {
		out[i] = FormatValue(v)
	}
	return out
}
