package urbancalc

import (
	"strconv"
)

// IncompleteExpressionError indicates an expression which ends where more
// input is required: after an operator, an open bracket, or a decimal point.
// Live previews treat it as "not yet evaluable" rather than as a failure. It
// implements InputError.
type IncompleteExpressionError struct {
	// Col is the position of the dangling rune.
	Col int
	// Last is the dangling rune.
	Last string
}

func (err *IncompleteExpressionError) Error() string {
	return errpos(err.Col, "incomplete expression ending in "+strconv.Quote(err.Last))
}

func (err *IncompleteExpressionError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a division whose divisor evaluated to zero.
// It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// NumberError indicates a malformed number, or some other token where a
// number was expected. It implements InputError.
type NumberError struct {
	// Col is the position of the start of the token.
	Col int
	// Text is the text scanned as a number, if any.
	Text string
}

func (err *NumberError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "expected number")
	}
	return errpos(err.Col, "invalid number format "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// CharacterError indicates input left over after a complete expression was
// parsed. It implements InputError.
type CharacterError struct {
	// Col is the position of the first unconsumed rune.
	Col int
	// Char is the first unconsumed rune.
	Char rune
}

func (err *CharacterError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *CharacterError) Pos() int {
	return err.Col
}

// BracketError indicates an open parenthesis with no matching close. It
// implements InputError.
type BracketError struct {
	// Col is the position where the close parenthesis was expected.
	Col int
	// Open is the position of the unmatched open parenthesis.
	Open int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "missing closing parenthesis for ( at "+strconv.Itoa(err.Open))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError indicates that the input ended where a term was
// required. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "unexpected end of expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// RangeError is an error indicating that an expression evaluated to an
// infinity or NaN, e.g. through overflow.
type RangeError struct {
	// Value is the non-finite result.
	Value float64
}

func (err *RangeError) Error() string {
	return "result out of range: " + FormatNumber(err.Value)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*IncompleteExpressionError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*CharacterError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
