package urbancalc

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokens displayed in place of numbers which cannot be shown.
const (
	ErrorToken  = "Error"
	PosInfToken = "Infinity"
	NegInfToken = "-Infinity"
)

const (
	// intLimit is the magnitude below which integral values print without a
	// fractional part or exponent.
	intLimit = 1e15
	// intTolerance is the largest fractional part treated as zero.
	intTolerance = 1e-10
	// smallLimit is the magnitude below which values print in scientific
	// notation.
	smallLimit = 1e-4
	// fracDigits is the number of decimal digits in fixed notation.
	fracDigits = 8
	// sciDigits is the number of mantissa digits after the point in
	// scientific notation.
	sciDigits = 6
	// maxWidth is the longest fixed-notation string before switching to
	// scientific notation.
	maxWidth = 12
)

// FormatNumber formats a value for display. Values that are integral to within
// a small tolerance print as integers; others print with up to eight decimal
// places, or in scientific notation when very large, very small, or too wide.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return ErrorToken
	case math.IsInf(f, 1):
		return PosInfToken
	case math.IsInf(f, -1):
		return NegInfToken
	}
	abs := math.Abs(f)
	if _, frac := math.Modf(f); math.Abs(frac) < intTolerance && abs < intLimit {
		return strconv.FormatInt(int64(f), 10)
	}
	s := trimzeros(strconv.FormatFloat(f, 'f', fracDigits, 64))
	if utf8.RuneCountInString(s) > maxWidth || abs >= intLimit || abs < smallLimit {
		return scientific(f)
	}
	return s
}

// scientific formats f in normalized scientific notation without trailing
// zeros in the mantissa.
func scientific(f float64) string {
	s := strconv.FormatFloat(f, 'e', sciDigits, 64)
	k := strings.IndexByte(s, 'e')
	return trimzeros(s[:k]) + s[k:]
}

// trimzeros removes trailing zeros after a decimal point, then the point
// itself if nothing follows it.
func trimzeros(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
