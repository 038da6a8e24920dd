package urbancalc_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Egor-Urban/UrbanCalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"empty", "", 0},
		{"spaces", " \t ", 0},
		{"num", "1", 1},
		{"add", "1+2", 3},
		{"sub", "10-4-3", 3},
		{"mul", "2*3*4", 24},
		{"div", "8÷4÷2", 1},
		{"prec", "2+3*4", 14},
		{"prec-sub", "2-3*4+5", -5},
		{"mul-div", "2*3/4", 1.5},
		{"glyphs", "(2+3)×4", 20},
		{"frac", "7÷2", 3.5},
		{"neg", "-4", -4},
		{"neg-neg", "--4", 4},
		{"neg-plus", "-+4", -4},
		{"plus", "+4", 4},
		{"mul-neg", "2*-3", -6},
		{"neg-paren", "-(2+3)", -5},
		{"neg-binds-tight", "-2*-2", 4},
		{"nested", "((1))", 1},
		{"decimals", "1.5+.5", 2},
		{"dangling-point", "1.+1", 2},
		{"exp", "1e3+1", 1001},
		{"exp-neg", "2.5E-1", 0.25},
		{"whitespace", " 1 + 2 ", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := urbancalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result from %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalReader(t *testing.T) {
	r, err := urbancalc.Eval(strings.NewReader("(2+3)×4"))
	if err != nil {
		t.Fatal(err)
	}
	if r != 20 {
		t.Errorf("want 20, got %g", r)
	}
}

func TestEvalDeterministic(t *testing.T) {
	srcs := []string{"1÷3", "2÷3×3", "0.1+0.2", "123456.123456789", "1e-7×3", "-(7-10)÷4"}
	for _, src := range srcs {
		a, err := urbancalc.EvalString(src)
		if err != nil {
			t.Fatalf("evaluating %q: %v", src, err)
		}
		for i := 0; i < 10; i++ {
			b, err := urbancalc.EvalString(src)
			if err != nil {
				t.Fatalf("evaluating %q again: %v", src, err)
			}
			if math.Float64bits(a) != math.Float64bits(b) {
				t.Fatalf("%q gave %g then %g", src, a, b)
			}
			if urbancalc.FormatNumber(a) != urbancalc.FormatNumber(b) {
				t.Fatalf("%q formatted differently: %s vs %s", src, urbancalc.FormatNumber(a), urbancalc.FormatNumber(b))
			}
		}
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	zeros := []string{"0", "0.0", "00", "0.", ".0", "0e5", "-0", "(0)", "(1-1)", "0×7"}
	for _, z := range zeros {
		src := "5÷" + z
		r, err := urbancalc.EvalString(src)
		if urbancalc.Incomplete(err) {
			// "5÷0." is still being typed.
			continue
		}
		var derr *urbancalc.DivisionByZeroError
		if !errors.As(err, &derr) {
			t.Errorf("%q gave %g, %v; want division by zero", src, r, err)
		}
		if math.IsInf(r, 0) {
			t.Errorf("%q gave an infinity", src)
		}
	}
}

func TestEvalRange(t *testing.T) {
	cases := []struct {
		src string
		inf int
	}{
		{"1e308*10", 1},
		{"-1e308*10", -1},
		{"1e999", 1},
	}
	for _, c := range cases {
		r, err := urbancalc.EvalString(c.src)
		var rerr *urbancalc.RangeError
		if !errors.As(err, &rerr) {
			t.Errorf("%q: want *RangeError, got %#v", c.src, err)
			continue
		}
		if !math.IsInf(r, c.inf) || !math.IsInf(rerr.Value, c.inf) {
			t.Errorf("%q: want infinity with sign %d, got %g", c.src, c.inf, r)
		}
		if !strings.Contains(err.Error(), "Infinity") {
			t.Errorf("%q: message %q doesn't name the value", c.src, err.Error())
		}
	}
}

func TestIncomplete(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"1+", true},
		{"1×", true},
		{"(", true},
		{"2.", true},
		{"-", true},
		{"1+2", false},
		{"(1+2", false},
		{"1÷0", false},
	}
	for _, c := range cases {
		_, err := urbancalc.EvalString(c.src)
		if got := urbancalc.Incomplete(err); got != c.want {
			t.Errorf("Incomplete(%q): want %t, got %t (%v)", c.src, c.want, got, err)
		}
	}
}
