package urbancalc_test

import (
	"math"
	"testing"

	"github.com/Egor-Urban/UrbanCalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2")
	f.Add("(2+3)×4")
	f.Add("5÷0")
	f.Add("-.5e-3")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := urbancalc.EvalString(s)
		if err != nil {
			return
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Errorf("%q gave %g with no error", s, r)
		}
		if urbancalc.FormatNumber(r) == "" {
			t.Errorf("%q formatted as empty", s)
		}
	})
}
