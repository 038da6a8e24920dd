package urbancalc

import (
	"errors"
	"io"
	"math"
	"strings"
)

// EvalString evaluates an expression. The display glyphs × and ÷ are accepted
// in place of * and /, and whitespace is ignored. Error positions count runes
// of the input with whitespace removed.
//
// An empty expression evaluates to 0. An expression ending in an operator,
// open parenthesis, or decimal point gives an *IncompleteExpressionError. If
// the result is an infinity or NaN, it is returned along with a *RangeError.
func EvalString(src string) (float64, error) {
	v := normalize(src)
	if len(v) == 0 {
		return 0, nil
	}
	if last := v[len(v)-1]; strings.ContainsRune(binops+"(.", last) {
		return 0, &IncompleteExpressionError{Col: len(v), Last: string(last)}
	}
	r, err := parse(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return r, &RangeError{Value: r}
	}
	return r, nil
}

// Eval is a shortcut to read an expression to EOF and evaluate it.
func Eval(src io.RuneReader) (float64, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		b.WriteRune(r)
	}
	return EvalString(b.String())
}

// Incomplete returns whether err indicates an expression that is still being
// composed rather than one that is wrong.
func Incomplete(err error) bool {
	var ierr *IncompleteExpressionError
	return errors.As(err, &ierr)
}
