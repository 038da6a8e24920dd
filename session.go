package urbancalc

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Operator is a binary operator key.
type Operator int8

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpMultiply
	OpDivide
)

// Glyph returns the text the operator appends to an expression.
func (op Operator) Glyph() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// ParenKind selects an open or close parenthesis.
type ParenKind bool

const (
	ParenOpen  ParenKind = true
	ParenClose ParenKind = false
)

// Session is the editing state of a calculator: an expression buffer plus the
// result shown for it. Every edit re-evaluates the buffer to keep a live
// preview in the display. A Session is not safe for concurrent use.
//
// The zero value is an empty session that logs nothing, but NewSession is
// needed to set options.
type Session struct {
	expr      string
	display   string
	committed float64
	// pending is set once Calculate finishes. The next edit either starts a
	// new expression or, for operators, continues from the result.
	pending bool
	// parens is the number of unmatched open parentheses in expr.
	parens int
	// err is the error from the last Calculate, if it failed.
	err    error
	errtok string
	log    *slog.Logger
}

// Expression returns the expression buffer.
func (s *Session) Expression() string {
	return s.expr
}

// Display returns the live preview or the result of the last calculation. It
// is never empty.
func (s *Session) Display() string {
	if s.display == "" {
		return "0"
	}
	return s.display
}

// Committed returns the value of the last successful calculation, or 0 if
// there has been none since the session was created or cleared.
func (s *Session) Committed() float64 {
	return s.committed
}

// OpenParens returns the number of unmatched open parentheses in the
// expression.
func (s *Session) OpenParens() int {
	return s.parens
}

// Pending returns whether the display holds the result of a calculation that
// has not been edited since.
func (s *Session) Pending() bool {
	return s.pending
}

// Err returns the reason the last calculation failed. It is nil if the last
// calculation succeeded or the expression has been edited since.
func (s *Session) Err() error {
	return s.err
}

// AddDigit appends a decimal digit. If the display holds a result, the digit
// starts a new expression. Runes other than ASCII digits are ignored.
func (s *Session) AddDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	s.restart()
	s.expr += string(d)
	s.refresh()
}

// AddDecimal appends a decimal point unless the number at the end of the
// expression already has one. Where no digits precede it, the point is
// written as "0.".
func (s *Session) AddDecimal() {
	s.restart()
	for i := len(s.expr); i > 0; {
		r, sz := utf8.DecodeLastRuneInString(s.expr[:i])
		if r == '.' {
			return
		}
		if !isdigit(r) {
			break
		}
		i -= sz
	}
	if r, ok := s.last(); !ok || isop(r) || r == '(' {
		s.expr += "0."
	} else {
		s.expr += "."
	}
	s.refresh()
}

// AddOperator appends a binary operator. An operator at the end of the
// expression is replaced rather than followed. If the display holds a
// successful result, the new expression begins with it. An empty expression
// accepts only OpMinus, as a sign. After an open parenthesis, OpPlus and
// OpMinus are accepted as signs.
func (s *Session) AddOperator(op Operator) {
	g := op.Glyph()
	if g == "" {
		return
	}
	if s.pending {
		s.pending = false
		s.parens = 0
		if s.err == nil {
			s.expr = s.Display()
		} else {
			s.expr = ""
			s.err = nil
		}
	}
	base := s.expr
	if r, ok := s.last(); ok && isop(r) {
		base = base[:len(base)-utf8.RuneLen(r)]
	}
	switch {
	case base == "" && op != OpMinus,
		strings.HasSuffix(base, "(") && op != OpMinus && op != OpPlus:
		s.refresh()
		return
	}
	s.expr = base + g
	s.refresh()
}

// AddParen appends a parenthesis. An open parenthesis is accepted only where
// a term may start. A close parenthesis is accepted only after a term and
// only when there is an unmatched open parenthesis.
func (s *Session) AddParen(kind ParenKind) {
	s.restart()
	r, ok := s.last()
	switch kind {
	case ParenOpen:
		if !ok || isop(r) || r == '(' {
			s.expr += "("
			s.parens++
		}
	case ParenClose:
		if s.parens > 0 && ok && (isdigit(r) || r == '.' || r == ')') {
			s.expr += ")"
			s.parens--
		}
	}
	s.refresh()
}

// Calculate evaluates the expression and shows the result. If evaluation
// fails, including when the result is an infinity or NaN, the display shows
// the error token and Err reports why. Either way, the next digit starts a
// new expression. Calculate does nothing if the expression is empty.
func (s *Session) Calculate() {
	if s.expr == "" {
		return
	}
	s.pending = true
	r, err := EvalString(s.expr)
	if err != nil {
		s.display = s.errtok
		if s.display == "" {
			s.display = ErrorToken
		}
		s.err = err
		s.logger().Info("calculation failed", slog.String("expression", s.expr), slog.Any("err", err))
		return
	}
	s.display = FormatNumber(r)
	s.committed = r
	s.err = nil
	s.logger().Debug("calculated", slog.String("expression", s.expr), slog.String("result", s.display))
}

// Backspace removes the last rune of the expression. After Calculate, the
// next digit still starts a new expression.
func (s *Session) Backspace() {
	r, ok := s.last()
	if !ok {
		return
	}
	switch r {
	case '(':
		s.parens--
	case ')':
		s.parens++
	}
	s.expr = s.expr[:len(s.expr)-utf8.RuneLen(r)]
	s.err = nil
	s.refresh()
}

// Clear resets the session to its initial state.
func (s *Session) Clear() {
	*s = Session{
		display: "0",
		errtok:  s.errtok,
		log:     s.log,
	}
}

// restart discards the expression if the display holds a result.
func (s *Session) restart() {
	if !s.pending {
		return
	}
	s.expr = ""
	s.parens = 0
	s.pending = false
	s.err = nil
}

// refresh recomputes the preview. Errors of any kind preview as 0.
func (s *Session) refresh() {
	if s.expr == "" {
		s.display = "0"
		return
	}
	r, err := EvalString(s.expr)
	if err != nil {
		if !Incomplete(err) {
			s.logger().Debug("preview unavailable", slog.String("expression", s.expr), slog.Any("err", err))
		}
		s.display = "0"
		return
	}
	s.display = FormatNumber(r)
}

var discard = slog.New(slog.DiscardHandler)

// logger returns the session's logger, or one that discards everything for
// the zero Session.
func (s *Session) logger() *slog.Logger {
	if s.log == nil {
		return discard
	}
	return s.log
}

// last returns the last rune of the expression.
func (s *Session) last() (rune, bool) {
	if s.expr == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s.expr)
	return r, true
}

func isop(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}
