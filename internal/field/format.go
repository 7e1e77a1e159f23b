package field

import (
	"math"
	"strconv"
)

// precision is the significant-digit count of a default C-style stream.
const precision = 6

// FormatFloat renders v with six significant digits, switching to exponent
// notation for very large or small magnitudes and dropping trailing zeros.
// Infinities and NaN render as "inf", "-inf" and "nan".
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
