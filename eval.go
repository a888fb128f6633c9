package cplot

import (
	"errors"
	"math/big"
)

// Eval evaluates the expression with the given variable values. Every
// variable returned by e.Vars must have a value. If the domain has an
// implicit unit, its name always refers to the unit, regardless of vars.
//
// Eval does not modify e or vars, so it may be called concurrently.
func (e *Expr[T]) Eval(vars map[rune]T) (T, error) {
	var zero T
	for _, name := range e.names {
		if _, ok := vars[name]; !ok {
			return zero, &NameError{Name: name}
		}
	}
	return e.run(vars)
}

// run executes the postfix program.
func (e *Expr[T]) run(vars map[rune]T) (T, error) {
	var zero T
	unit, unitv, hasUnit := e.dom.Unit()
	stack := make([]T, 0, len(e.rpn))
	for _, tok := range e.rpn {
		switch tok.Kind {
		case KindNumber:
			v, err := e.dom.Literal(tok.Text)
			if err != nil {
				return zero, &SyntaxError{Col: tok.Pos, Token: tok.Text, Msg: "invalid number: " + err.Error(), Err: ErrMalformed}
			}
			stack = append(stack, v)
		case KindVariable:
			name := []rune(tok.Text)[0]
			if hasUnit && name == unit {
				stack = append(stack, unitv)
				continue
			}
			v, ok := vars[name]
			if !ok {
				return zero, &NameError{Name: name}
			}
			stack = append(stack, v)
		case KindFunction, KindNegation:
			if len(stack) < 1 {
				return zero, &SyntaxError{Col: tok.Pos, Token: tok.Text, Msg: "missing operand", Err: ErrMalformed}
			}
			f := e.dom.unaryFunc(tok)
			if f == nil {
				return zero, &FuncError{Name: tok.Name(), Domain: e.dom.Name()}
			}
			x := stack[len(stack)-1]
			r, err := call(tok.Name(), func() T { return f(x) })
			if err != nil {
				return zero, err
			}
			stack[len(stack)-1] = r
		case KindOperator:
			if len(stack) < 2 {
				return zero, &SyntaxError{Col: tok.Pos, Token: tok.Text, Msg: "missing operand", Err: ErrMalformed}
			}
			f := e.dom.binary[tok.Text]
			if f == nil {
				return zero, &FuncError{Name: tok.Text, Domain: e.dom.Name()}
			}
			// The right operand is on top.
			x, y := stack[len(stack)-2], stack[len(stack)-1]
			r, err := call(tok.Text, func() T { return f(x, y) })
			if err != nil {
				return zero, err
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = r
		default:
			panic("cplot: invalid token in postfix program: " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return zero, &SyntaxError{Col: 1, Msg: "no expression", Err: ErrMalformed}
	case 1:
		return stack[0], nil
	default:
		return zero, &SyntaxError{Col: e.rpn[0].Pos, Msg: "operands with no operator", Err: ErrExtraOperand}
	}
}

// call calls f, converting a big.ErrNaN panic into a DomainError for the
// function name. Other panics are propagated.
func call[T any](name string, f func() T) (r T, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok {
			panic(p)
		}
		var nan big.ErrNaN
		if !errors.As(e, &nan) {
			panic(p)
		}
		err = &DomainError{Func: name, Err: nan}
	}()
	return f(), nil
}

// Eval is a shortcut to parse an expression over a domain and evaluate it
// once.
func Eval[T any](src string, dom *Domain[T], vars map[rune]T) (T, error) {
	e, err := Parse(src, dom)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.Eval(vars)
}
