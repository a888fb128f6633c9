package cplot

import (
	"math"
	"math/big"
	"math/cmplx"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// funcnames is the registry of function names the lexer recognizes. Each
// domain implements some subset of it.
var funcnames = [...]string{
	"sqrt", "exp", "sin", "cos", "tan", "asin", "acos", "atan",
	"ln", "log", "abs", "real", "imag", "arg",
}

// registered reports whether name is a function name in any domain.
func registered(name string) bool {
	for _, f := range funcnames {
		if f == name {
			return true
		}
	}
	return false
}

// Domain is a numeric domain over which expressions are evaluated. It holds
// the literal parser and the function tables for values of type T. Domains
// are never modified after they are created, so they are safe to share among
// any number of goroutines.
//
// The set of domains is fixed: Real, Complex, and those returned by BigReal.
type Domain[T any] struct {
	name   string
	parse  func(text string) (T, error)
	neg    func(x T) T
	unary  map[string]func(x T) T
	binary map[string]func(x, y T) T
	// unit is the name of the implicit variable, or 0 if there is none.
	unit  rune
	unitv T
}

// Name returns the name of the domain, e.g. "real".
func (d *Domain[T]) Name() string {
	return d.name
}

// Literal parses a decimal number into the domain.
func (d *Domain[T]) Literal(text string) (T, error) {
	return d.parse(text)
}

// Unit returns the implicit variable of the domain and its value. ok is false
// if the domain has no implicit variable.
func (d *Domain[T]) Unit() (name rune, value T, ok bool) {
	return d.unit, d.unitv, d.unit != 0
}

// HasFunc returns whether the domain implements the unary function name.
func (d *Domain[T]) HasFunc(name string) bool {
	return d.unary[name] != nil
}

// Funcs returns the names of the unary functions the domain implements, in
// registry order.
func (d *Domain[T]) Funcs() []string {
	r := make([]string, 0, len(d.unary))
	for _, name := range funcnames {
		if d.HasFunc(name) {
			r = append(r, name)
		}
	}
	return r
}

// unaryFunc finds the implementation of a unary token.
func (d *Domain[T]) unaryFunc(tok Token) func(T) T {
	if tok.Kind == KindNegation {
		return d.neg
	}
	return d.unary[tok.Name()]
}

// Real is the domain of float64 values.
var Real = &Domain[float64]{
	name: "real",
	parse: func(text string) (float64, error) {
		return strconv.ParseFloat(text, 64)
	},
	neg: func(x float64) float64 { return -x },
	unary: map[string]func(float64) float64{
		"sqrt": math.Sqrt,
		"exp":  math.Exp,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"ln":   math.Log,
		"log":  math.Log10,
		"abs":  math.Abs,
	},
	binary: map[string]func(float64, float64) float64{
		"+": func(x, y float64) float64 { return x + y },
		"-": func(x, y float64) float64 { return x - y },
		"*": func(x, y float64) float64 { return x * y },
		"/": func(x, y float64) float64 { return x / y },
		"^": math.Pow,
	},
}

// Complex is the domain of complex128 values. In this domain, the variable i
// is always the imaginary unit.
var Complex = &Domain[complex128]{
	name: "complex",
	parse: func(text string) (complex128, error) {
		x, err := strconv.ParseFloat(text, 64)
		return complex(x, 0), err
	},
	neg: func(z complex128) complex128 { return -z },
	unary: map[string]func(complex128) complex128{
		"sqrt": cmplx.Sqrt,
		"exp":  cmplx.Exp,
		"sin":  cmplx.Sin,
		"cos":  cmplx.Cos,
		"tan":  cmplx.Tan,
		"asin": cmplx.Asin,
		"acos": cmplx.Acos,
		"atan": cmplx.Atan,
		"ln":   cmplx.Log,
		"log":  cmplx.Log10,
		"abs":  func(z complex128) complex128 { return complex(cmplx.Abs(z), 0) },
		"real": func(z complex128) complex128 { return complex(real(z), 0) },
		"imag": func(z complex128) complex128 { return complex(imag(z), 0) },
		"arg":  func(z complex128) complex128 { return complex(cmplx.Phase(z), 0) },
	},
	binary: map[string]func(complex128, complex128) complex128{
		"+": func(x, y complex128) complex128 { return x + y },
		"-": func(x, y complex128) complex128 { return x - y },
		"*": func(x, y complex128) complex128 { return x * y },
		"/": func(x, y complex128) complex128 { return x / y },
		"^": cmplx.Pow,
	},
	unit:  'i',
	unitv: 1i,
}

// BigReal creates a domain of arbitrary-precision reals computed to prec bits.
// The domain has no trigonometric functions. Arguments outside a function's
// domain, such as the square root of a negative number, result in a
// *DomainError.
func BigReal(prec uint) *Domain[*big.Float] {
	alloc := func() *big.Float { return new(big.Float).SetPrec(prec) }
	// The functions below panic with big.ErrNaN for out-of-domain arguments,
	// which the evaluator converts to DomainError.
	return &Domain[*big.Float]{
		name: "big",
		parse: func(text string) (*big.Float, error) {
			r, _, err := alloc().Parse(text, 10)
			return r, err
		},
		neg: func(x *big.Float) *big.Float { return alloc().Neg(x) },
		unary: map[string]func(*big.Float) *big.Float{
			"sqrt": func(x *big.Float) *big.Float { return alloc().Sqrt(x) },
			"exp":  func(x *big.Float) *big.Float { return bigfloat.Exp(alloc(), x) },
			"ln":   func(x *big.Float) *big.Float { return bigLog(alloc(), x) },
			"log": func(x *big.Float) *big.Float {
				r := bigLog(alloc(), x)
				ten := alloc().SetInt64(10)
				return r.Quo(r, bigfloat.Log(ten, ten))
			},
			"abs": func(x *big.Float) *big.Float { return alloc().Abs(x) },
		},
		binary: map[string]func(*big.Float, *big.Float) *big.Float{
			"+": func(x, y *big.Float) *big.Float { return alloc().Add(x, y) },
			"-": func(x, y *big.Float) *big.Float { return alloc().Sub(x, y) },
			"*": func(x, y *big.Float) *big.Float { return alloc().Mul(x, y) },
			"/": func(x, y *big.Float) *big.Float { return alloc().Quo(x, y) },
			"^": func(x, y *big.Float) *big.Float {
				// TODO(zeph): allow negative base with integer exponent
				if x.Sign() < 0 {
					panic(big.ErrNaN{})
				}
				return bigfloat.Pow(alloc(), x, y)
			},
		},
	}
}

// bigLog sets z to the natural logarithm of x, panicking with big.ErrNaN if x
// is negative.
func bigLog(z, x *big.Float) *big.Float {
	if x.Sign() < 0 {
		panic(big.ErrNaN{})
	}
	return bigfloat.Log(z, x)
}
