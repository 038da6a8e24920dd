package urbancalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the operator glyphs shown in an expression buffer.
const Operators = "+-×÷"

// binops contains the operators understood by the parser after glyph
// normalization.
const binops = "+-*/"

// glyphs maps display operator glyphs to their parser equivalents.
var glyphs = strings.NewReplacer("×", "*", "÷", "/")

// normalize maps display glyphs to parser operators and strips whitespace.
func normalize(src string) []rune {
	src = glyphs.Replace(src)
	v := make([]rune, 0, len(src))
	for _, r := range src {
		if unicode.IsSpace(r) {
			continue
		}
		v = append(v, r)
	}
	return v
}

// scanner is a cursor over normalized input. The cursor only ever moves
// forward.
type scanner struct {
	src []rune
	pos int
}

// eof returns whether the whole input has been consumed.
func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the rune under the cursor, or 0 at the end of the input.
func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// col returns the 1-based column of the rune under the cursor.
func (s *scanner) col() int {
	return s.pos + 1
}

// digits advances over ASCII digits and reports whether any were consumed.
func (s *scanner) digits() bool {
	start := s.pos
	for !s.eof() && '0' <= s.src[s.pos] && s.src[s.pos] <= '9' {
		s.pos++
	}
	return s.pos > start
}

// scanNum scans a number beginning at the cursor. A number needs at least one
// digit in its mantissa, and an exponent marker must be followed by digits.
func (s *scanner) scanNum() (float64, error) {
	start := s.pos
	dig := s.digits()
	if s.peek() == '.' {
		s.pos++
		if s.digits() {
			dig = true
		}
	}
	if s.pos == start {
		return 0, &NumberError{Col: start + 1}
	}
	if !dig {
		return 0, &NumberError{Col: start + 1, Text: string(s.src[start:s.pos])}
	}
	if r := s.peek(); r == 'e' || r == 'E' {
		s.pos++
		if r := s.peek(); r == '+' || r == '-' {
			s.pos++
		}
		if !s.digits() {
			return 0, &NumberError{Col: start + 1, Text: string(s.src[start:s.pos])}
		}
	}
	text := string(s.src[start:s.pos])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
			// Overflow gives ±Inf and underflow gives 0, which is what we
			// want. Infinities are reported after evaluation.
			return f, nil
		}
		return 0, &NumberError{Col: start + 1, Text: text}
	}
	return f, nil
}
