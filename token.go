package cplot

import (
	"strconv"
	"strings"
)

// Token is a lexeme of an expression.
type Token struct {
	// Text is the source text of the token. For functions, this includes the
	// opening bracket, e.g. "sin(".
	Text string
	// Kind is the classification of the token.
	Kind Kind
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Kind is the classification of a token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNumber is a decimal literal.
	KindNumber
	// KindVariable is a single-letter variable name.
	KindVariable
	// KindFunction is a function name together with its opening bracket.
	KindFunction
	// KindOperator is a binary operator.
	KindOperator
	// KindNegation is a unary minus.
	KindNegation
	// KindOpen is an open bracket.
	KindOpen
	// KindClose is a close bracket.
	KindClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Operators contains the binary operators.
const Operators = "+-*/^"

// Prec returns the precedence of the token. Operands and brackets have
// precedence 0 and functions have 1; higher binds tighter.
func (t Token) Prec() int {
	switch t.Kind {
	case KindFunction:
		return 1
	case KindNegation:
		return 5
	case KindOperator:
		switch t.Text {
		case "+", "-":
			return 2
		case "/":
			return 3
		case "*":
			return 4
		case "^":
			return 5
		}
	}
	return 0
}

// RightAssoc returns whether the token is a right-associative operator.
func (t Token) RightAssoc() bool {
	return t.Kind == KindNegation || t.Kind == KindOperator && t.Text == "^"
}

// Arity returns the number of operands the token consumes during evaluation.
func (t Token) Arity() int {
	switch t.Kind {
	case KindFunction, KindNegation:
		return 1
	case KindOperator:
		return 2
	default:
		return 0
	}
}

// Name returns the name under which the token is found in a function table.
// For functions, this is the text without the trailing bracket.
func (t Token) Name() string {
	if t.Kind == KindFunction {
		return strings.TrimSuffix(t.Text, "(")
	}
	return t.Text
}

// validRune reports whether r may appear in any token.
func validRune(r rune) bool {
	switch {
	case '0' <= r && r <= '9', r == '.', r == '(', r == ')':
		return true
	case isLetter(r):
		return true
	default:
		return strings.ContainsRune(Operators, r)
	}
}

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isNumeric reports whether r may appear in a number.
func isNumeric(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// fmtTokens writes the texts of toks separated by spaces.
func fmtTokens(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
