package urbancalc

// expression := term (('+' | '-') term)*
// term       := factor (('*' | '/') factor)*
// factor     := '(' expression ')' | '-' factor | '+' factor | number
// number     := digits ['.' [digits]] [('e' | 'E') ['+' | '-'] digits]
//
// Each rule evaluates as it parses; no tree is built.

// parse evaluates normalized input in full.
func parse(src []rune) (float64, error) {
	s := &scanner{src: src}
	r, err := parseexpr(s)
	if err != nil {
		return 0, err
	}
	if !s.eof() {
		return 0, &CharacterError{Col: s.col(), Char: s.peek()}
	}
	return r, nil
}

// parseexpr parses a sum of terms.
func parseexpr(s *scanner) (float64, error) {
	r, err := parseterm(s)
	if err != nil {
		return 0, err
	}
	for {
		switch s.peek() {
		case '+':
			s.pos++
			x, err := parseterm(s)
			if err != nil {
				return 0, err
			}
			r += x
		case '-':
			s.pos++
			x, err := parseterm(s)
			if err != nil {
				return 0, err
			}
			r -= x
		default:
			return r, nil
		}
	}
}

// parseterm parses a product of factors.
func parseterm(s *scanner) (float64, error) {
	r, err := parsefactor(s)
	if err != nil {
		return 0, err
	}
	for {
		switch s.peek() {
		case '*':
			s.pos++
			x, err := parsefactor(s)
			if err != nil {
				return 0, err
			}
			r *= x
		case '/':
			col := s.col()
			s.pos++
			x, err := parsefactor(s)
			if err != nil {
				return 0, err
			}
			// Zero divisors are errors, never infinities.
			if x == 0 {
				return 0, &DivisionByZeroError{Col: col}
			}
			r /= x
		default:
			return r, nil
		}
	}
}

// parsefactor parses a number, a signed factor, or a parenthesized
// expression.
func parsefactor(s *scanner) (float64, error) {
	if s.eof() {
		return 0, &EmptyExpressionError{Col: s.col()}
	}
	switch s.peek() {
	case '(':
		open := s.col()
		s.pos++
		r, err := parseexpr(s)
		if err != nil {
			return 0, err
		}
		if s.peek() != ')' {
			return 0, &BracketError{Col: s.col(), Open: open}
		}
		s.pos++
		return r, nil
	case '-':
		s.pos++
		r, err := parsefactor(s)
		return -r, err
	case '+':
		s.pos++
		return parsefactor(s)
	default:
		return s.scanNum()
	}
}
