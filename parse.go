package cplot

// Expr is a parsed expression that can be evaluated over its domain. An Expr
// is immutable, so it is safe to evaluate concurrently.
type Expr[T any] struct {
	// src is the text the expression was parsed from.
	src string
	// toks is the expression in infix order.
	toks []Token
	// rpn is the expression in postfix order.
	rpn []Token
	// names is the sorted list of free variables, not including the domain's
	// implicit unit.
	names []rune
	// dom is the domain over which the expression is evaluated.
	dom *Domain[T]
}

// Parse parses an expression for evaluation over a domain. Functions which
// the domain does not implement are rejected as unknown symbols.
func Parse[T any](src string, dom *Domain[T]) (*Expr[T], error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	for _, tok := range toks {
		if tok.Kind == KindFunction && !dom.HasFunc(tok.Name()) {
			return nil, &LexError{Text: tok.Text, Kind: "function", Col: tok.Pos, Err: ErrUnknownSymbol}
		}
	}
	rpn, err := ToRPN(toks)
	if err != nil {
		return nil, err
	}
	if len(rpn) == 0 {
		return nil, &SyntaxError{Col: len([]rune(src)) + 1, Msg: "no expression", Err: ErrMalformed}
	}
	ex := Expr[T]{
		src:  src,
		toks: toks,
		rpn:  rpn,
		dom:  dom,
	}
	unit, _, hasUnit := dom.Unit()
	seen := make(map[rune]bool)
	for _, tok := range toks {
		if tok.Kind != KindVariable {
			continue
		}
		r := []rune(tok.Text)[0]
		if seen[r] || hasUnit && r == unit {
			continue
		}
		seen[r] = true
		ex.names = append(ex.names, r)
	}
	sortrunes(ex.names)
	return &ex, nil
}

// ToRPN converts a sequence of tokens in infix order to postfix order using
// the shunting-yard algorithm. Brackets are removed; each function follows
// its argument.
func ToRPN(toks []Token) ([]Token, error) {
	out := make([]Token, 0, len(toks))
	ops := make([]Token, 0, len(toks)/2)
	for _, tok := range toks {
		switch tok.Kind {
		case KindNumber, KindVariable:
			out = append(out, tok)
		case KindOpen, KindFunction, KindNegation:
			// Prefix tokens have no left operand, so they never pop.
			ops = append(ops, tok)
		case KindClose:
			for len(ops) > 0 && !marker(ops[len(ops)-1]) {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, &SyntaxError{Col: tok.Pos, Token: tok.Text, Msg: "close bracket with no open bracket or function", Err: ErrMalformed}
			}
			if top := ops[len(ops)-1]; top.Kind == KindFunction {
				out = append(out, top)
			}
			ops = ops[:len(ops)-1]
		case KindOperator:
			for len(ops) > 0 && pops(tok, ops[len(ops)-1]) {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("cplot: unknown token: " + tok.String())
		}
	}
	for i := len(ops) - 1; i >= 0; i-- {
		if marker(ops[i]) {
			return nil, &BracketError{Col: ops[i].Pos, Open: true}
		}
		out = append(out, ops[i])
	}
	return out, nil
}

// marker reports whether tok opens a bracketed group.
func marker(tok Token) bool {
	return tok.Kind == KindOpen || tok.Kind == KindFunction
}

// pops reports whether the binary operator cur moves top from the operator
// stack to the output. Left-associative operators pop operators of equal
// precedence; right-associative ones do not.
func pops(cur, top Token) bool {
	if top.Kind != KindOperator && top.Kind != KindNegation {
		return false
	}
	if cur.RightAssoc() {
		return cur.Prec() < top.Prec()
	}
	return cur.Prec() <= top.Prec()
}

// sortrunes sorts a rune slice without using package sort because that has
// reflection and allocation problems.
func sortrunes(names []rune) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Vars returns the variable names which must be given to evaluate the
// expression. The domain's implicit unit is not included.
func (e *Expr[T]) Vars() []rune {
	return append(([]rune)(nil), e.names...)
}

// Tokens returns the tokens of the expression in infix order.
func (e *Expr[T]) Tokens() []Token {
	return append(([]Token)(nil), e.toks...)
}

// RPN returns the tokens of the expression in postfix order.
func (e *Expr[T]) RPN() []Token {
	return append(([]Token)(nil), e.rpn...)
}

// Domain returns the domain over which the expression is evaluated.
func (e *Expr[T]) Domain() *Domain[T] {
	return e.dom
}

// Source returns the text from which the expression was parsed.
func (e *Expr[T]) Source() string {
	return e.src
}

// String formats the expression in postfix order, with tokens separated by
// spaces.
func (e *Expr[T]) String() string {
	return fmtTokens(e.rpn)
}
