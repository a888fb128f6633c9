package cplot

import (
	"errors"
	"math/big"
	"strconv"
)

// Error kinds. Every error returned by this package matches one of these
// under errors.Is, except DomainError, which matches big.ErrNaN.
var (
	// ErrInvalidCharacter is the kind of errors for runes that cannot appear
	// in any token.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrMismatchedParens is the kind of errors for unbalanced brackets.
	ErrMismatchedParens = errors.New("mismatched parentheses")
	// ErrUnknownSymbol is the kind of errors for letter runs that are neither
	// variables nor known functions.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrMalformed is the kind of structural errors.
	ErrMalformed = errors.New("malformed expression")
	// ErrExtraOperand is the kind of errors for expressions that leave more
	// than one value after evaluation. It wraps ErrMalformed.
	ErrExtraOperand error = &wrapped{"extra operand", ErrMalformed}
	// ErrMissingVariable is the kind of errors for free variables that were
	// not given values.
	ErrMissingVariable = errors.New("missing variable")
	// ErrUnknownFunc is the kind of errors for function or operator tokens
	// with no implementation in the domain. Parse makes it unreachable for
	// its own expressions.
	ErrUnknownFunc = errors.New("unknown function or operator")
)

type wrapped struct {
	msg string
	err error
}

func (err *wrapped) Error() string {
	return err.msg
}

func (err *wrapped) Unwrap() error {
	return err.err
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the error occurred,
	// including the offending rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "function", or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the position of the start of the token.
	Col int
	// Err is ErrInvalidCharacter, ErrUnknownSymbol, or ErrMalformed.
	Err error
}

func (err *LexError) Error() string {
	what := "token"
	if err.Kind != "" {
		what = err.Kind + " token"
	}
	return errpos(err.Col, err.Err.Error()+" in "+what+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return err.Err
}

// BracketError indicates unbalanced brackets. It implements InputError and
// unwraps to ErrMismatchedParens.
type BracketError struct {
	// Col is the position of the offending bracket, or one past the end of
	// the input if an open bracket was never closed.
	Col int
	// Open is whether the error is an unclosed open bracket, as opposed to a
	// close bracket with no open bracket.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket with no close bracket")
	}
	return errpos(err.Col, "close bracket with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMismatchedParens
}

// SyntaxError indicates a structurally invalid expression. It implements
// InputError.
type SyntaxError struct {
	// Col is the position of the token at which the problem was found.
	Col int
	// Token is the text of that token, if any.
	Token string
	// Msg describes the problem.
	Msg string
	// Err is ErrMalformed or ErrExtraOperand.
	Err error
}

func (err *SyntaxError) Error() string {
	msg := err.Err.Error() + ": " + err.Msg
	if err.Token != "" {
		msg += " at " + strconv.Quote(err.Token)
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation bindings.
type NameError struct {
	// Name is the name that was missing.
	Name rune
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.QuoteRune(err.Name)
}

func (err *NameError) Unwrap() error {
	return ErrMissingVariable
}

// FuncError indicates a function or operator token that has no
// implementation in the evaluating domain.
type FuncError struct {
	// Name is the function or operator name.
	Name string
	// Domain is the name of the domain.
	Domain string
}

func (err *FuncError) Error() string {
	return "no function " + strconv.Quote(err.Name) + " in " + err.Domain + " domain"
}

func (err *FuncError) Unwrap() error {
	return ErrUnknownFunc
}

// DomainError is an error returned when a function is called on arguments
// outside its domain. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// Func is a name identifying the function.
	Func string
	// Err is the error the function raised.
	Err big.ErrNaN
}

func (err *DomainError) Error() string {
	msg := "argument outside domain of " + err.Func
	if s := err.Err.Error(); s != "" {
		msg += ": " + s
	}
	return msg
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
