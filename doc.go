// Package urbancalc implements the engine of a button calculator.
//
// A Session holds the expression the user has typed so far, e.g. "(2+3)×4",
// and the number shown for it. Keys arrive one at a time through Apply or the
// Add methods; after every edit the session evaluates whatever is in the
// buffer so the display can show a live preview. Calculate commits the
// result, after which a digit starts a new expression and an operator
// continues from the result.
//
// Expressions use + - × ÷ (or * and /), parentheses, unary signs, and
// decimal numbers with optional exponents. Arithmetic is float64. Dividing by
// zero is an error rather than an infinity.
package urbancalc
