package cplot_test

import (
	"math/big"
	"testing"

	"github.com/zephyrtronium/cplot"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1/0")
	f.Add("sqrt(0-x)")
	dom := cplot.BigReal(64)
	f.Fuzz(func(t *testing.T, s string) {
		cplot.Eval(s, cplot.Real, map[rune]float64{'x': 1})
		cplot.Eval(s, cplot.Complex, map[rune]complex128{'z': 1i})
		cplot.Eval(s, dom, map[rune]*big.Float{'x': big.NewFloat(1)})
	})
}
