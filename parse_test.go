package cplot

import (
	"errors"
	"reflect"
	"testing"
)

func TestToRPN(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rpn  string
	}{
		{"num", "1", "1"},
		{"paren", "(x)", "x"},
		{"multi", "((((x))))", "x"},
		{"add", "x+y", "x y +"},
		{"prec", "3+4*2", "3 4 2 * +"},
		{"prec-paren", "(3+4)*2", "3 4 + 2 *"},
		{"add4", "w+x+y+z", "w x + y + z +"},
		{"sub4", "w-x-y-z", "w x - y - z -"},
		{"mul4", "w*x*y*z", "w x * y * z *"},
		{"div4", "w/x/y/z", "w x / y / z /"},
		{"pow4", "w^x^y^z", "w x y z ^ ^ ^"},
		{"mul-div", "x*y/z", "x y * z /"},
		{"div-mul", "x/y*z", "x y z * /"},
		{"desc", "w^x*y+z", "w x ^ y * z +"},
		{"asc", "w+x*y^z", "w x y z ^ * +"},
		{"func", "sin(x)", "x sin("},
		{"func-expr", "sin(x+1)*2", "x 1 + sin( 2 *"},
		{"nested", "sqrt(abs(x))", "x abs( sqrt("},
		{"func-args", "exp(x)^ln(y)", "x exp( y ln( ^"},
		{"neg", "-x", "x -"},
		{"neg-num", "-5", "5 -"},
		{"neg-pow", "-x^2", "x 2 ^ -"},
		{"neg-add", "-x+1", "x - 1 +"},
		{"neg-mul", "-x*y", "x - y *"},
		{"pow-neg", "2^-x", "2 x - ^"},
		{"pow-neg-pow", "x^-y^z", "x y z ^ - ^"},
		{"sub-neg", "3--2", "3 2 - -"},
		{"mul-neg", "3*-2", "3 2 - *"},
		{"paren-neg", "(-x)*2", "x - 2 *"},
		{"func-neg", "sin(-x)", "x - sin("},
		{"neg-func", "-sin(x)", "x sin( -"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to lex: %v", c.src, err)
			}
			rpn, err := ToRPN(toks)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := fmtTokens(rpn); got != c.rpn {
				t.Errorf("%q converted wrong:\n\twant %s\n\tgot  %s", c.src, c.rpn, got)
			}
		})
	}
}

func TestToRPNBrackets(t *testing.T) {
	cases := []struct {
		name string
		toks []Token
		kind error
	}{
		{
			name: "close",
			toks: []Token{
				{Text: "1", Kind: KindNumber, Pos: 1},
				{Text: ")", Kind: KindClose, Pos: 2},
			},
			kind: ErrMalformed,
		},
		{
			name: "open",
			toks: []Token{
				{Text: "(", Kind: KindOpen, Pos: 1},
				{Text: "1", Kind: KindNumber, Pos: 2},
			},
			kind: ErrMismatchedParens,
		},
		{
			name: "func",
			toks: []Token{
				{Text: "sin(", Kind: KindFunction, Pos: 1},
				{Text: "x", Kind: KindVariable, Pos: 5},
			},
			kind: ErrMismatchedParens,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rpn, err := ToRPN(c.toks)
			if err == nil {
				t.Fatalf("no error; got %v", rpn)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("wrong error kind: want %v, got %v", c.kind, err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
	}{
		{"empty", "", ErrMalformed},
		{"space", "  ", ErrMalformed},
		{"brackets", "()", ErrMalformed},
		{"unbalanced", "(1+2", ErrMismatchedParens},
		{"invalid", "1#2", ErrInvalidCharacter},
		{"unknown", "xy+1", ErrUnknownSymbol},
		{"real-in-real", "real(x)", ErrUnknownSymbol},
		{"arg-in-real", "1+arg(x)", ErrUnknownSymbol},
		{"neg-paren", "-(x+1)", ErrMalformed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src, Real)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, e)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("%q gave wrong error kind: want %v, got %v", c.src, c.kind, err)
			}
		})
	}
}

func TestParseDomainFuncs(t *testing.T) {
	cases := []struct {
		name string
		src  string
		real bool
		cplx bool
		big  bool
	}{
		{"sqrt", "sqrt(x)", true, true, true},
		{"exp", "exp(x)", true, true, true},
		{"ln", "ln(x)", true, true, true},
		{"log", "log(x)", true, true, true},
		{"abs", "abs(x)", true, true, true},
		{"sin", "sin(x)", true, true, false},
		{"atan", "atan(x)", true, true, false},
		{"real", "real(x)", false, true, false},
		{"imag", "imag(x)", false, true, false},
		{"arg", "arg(x)", false, true, false},
	}
	bigr := BigReal(64)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.src, Real)
			if (err == nil) != c.real {
				t.Errorf("real: %q gave error %v", c.src, err)
			}
			_, err = Parse(c.src, Complex)
			if (err == nil) != c.cplx {
				t.Errorf("complex: %q gave error %v", c.src, err)
			}
			_, err = Parse(c.src, bigr)
			if (err == nil) != c.big {
				t.Errorf("big: %q gave error %v", c.src, err)
			}
		})
	}
}

func TestParseVars(t *testing.T) {
	cases := []struct {
		name string
		src  string
		real []rune
		cplx []rune
	}{
		{"none", "1+2+3", nil, nil},
		{"one", "1+2+x", []rune{'x'}, []rune{'x'}},
		{"sort", "z+y+x+c+b+a", []rune("abcxyz"), []rune("abcxyz")},
		{"reuse", "a+b+c+b+a", []rune("abc"), []rune("abc")},
		{"case", "a+A", []rune("Aa"), []rune("Aa")},
		{"unit", "z+i*y", []rune("iyz"), []rune("yz")},
		{"func-arg", "sqrt(t)", []rune("t"), []rune("t")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse(c.src, Real)
			if err != nil {
				t.Fatalf("%q didn't parse: %v", c.src, err)
			}
			if v := r.Vars(); !reflect.DeepEqual(v, c.real) {
				t.Errorf("real: %q gave wrong variables:\n\twant %q\n\tgot  %q", c.src, string(c.real), string(v))
			}
			z, err := Parse(c.src, Complex)
			if err != nil {
				t.Fatalf("%q didn't parse: %v", c.src, err)
			}
			if v := z.Vars(); !reflect.DeepEqual(v, c.cplx) {
				t.Errorf("complex: %q gave wrong variables:\n\twant %q\n\tgot  %q", c.src, string(c.cplx), string(v))
			}
		})
	}
}

func TestExprAccessors(t *testing.T) {
	e, err := Parse("3 + 4*2", Real)
	if err != nil {
		t.Fatal(err)
	}
	if s := e.String(); s != "3 4 2 * +" {
		t.Errorf("wrong string: %q", s)
	}
	if s := e.Source(); s != "3 + 4*2" {
		t.Errorf("wrong source: %q", s)
	}
	if d := e.Domain(); d != Real {
		t.Errorf("wrong domain: %v", d.Name())
	}
	toks := e.Tokens()
	if s := fmtTokens(toks); s != "3 + 4 * 2" {
		t.Errorf("wrong tokens: %q", s)
	}
	// Modifying the copies must not change the expression.
	toks[0].Text = "9"
	rpn := e.RPN()
	rpn[0].Text = "9"
	if r, err := e.Eval(nil); err != nil || r != 11 {
		t.Errorf("expression changed: got %v, %v", r, err)
	}
}
