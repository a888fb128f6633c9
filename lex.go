package cplot

import (
	"io"
	"strings"
)

// Tokenize splits an expression into tokens. Brackets are checked for
// balance before any tokens are scanned.
func Tokenize(src string) ([]Token, error) {
	if err := balanced(src); err != nil {
		return nil, err
	}
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if err == io.EOF {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// balanced checks that every close bracket in src has an open bracket before
// it and every open bracket is closed.
func balanced(src string) error {
	depth, col := 0, 0
	for _, r := range src {
		col++
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &BracketError{Col: col}
			}
		}
	}
	if depth != 0 {
		return &BracketError{Col: col + 1, Open: true}
	}
	return nil
}

type lexer struct {
	src  *strings.Reader
	buf  strings.Builder
	rune int
	// prev is the kind of the last token scanned, used to tell negation from
	// subtraction.
	prev Kind
}

func lex(src string) *lexer {
	return &lexer{src: strings.NewReader(src)}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// peek returns the next rune without consuming it.
func (l *lexer) peek() (rune, error) {
	r, err := l.readRune()
	if err != nil {
		return 0, err
	}
	l.unreadRune()
	return r, nil
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.rune}
		switch {
		case r < '!':
			// Spaces and control characters separate tokens.
			continue
		case isNumeric(r):
			l.unreadRune()
			if err := l.scanNum(tok.Pos); err != nil {
				return tok, err
			}
			tok.Text, tok.Kind = l.buf.String(), KindNumber
		case r == '-' && l.unary():
			p, err := l.peek()
			if err != nil || !isNumeric(p) && !isLetter(p) {
				return tok, &SyntaxError{
					Col:   tok.Pos,
					Token: "-",
					Msg:   "negation must be immediately followed by a number or name",
					Err:   ErrMalformed,
				}
			}
			tok.Text, tok.Kind = "-", KindNegation
		case strings.ContainsRune(Operators, r):
			tok.Text, tok.Kind = string(r), KindOperator
		case isLetter(r):
			l.unreadRune()
			k, err := l.scanIdent(tok.Pos)
			if err != nil {
				return tok, err
			}
			tok.Text, tok.Kind = l.buf.String(), k
		case r == '(':
			tok.Text, tok.Kind = "(", KindOpen
		case r == ')':
			tok.Text, tok.Kind = ")", KindClose
		default:
			return tok, &LexError{Text: string(r), Col: tok.Pos, Err: ErrInvalidCharacter}
		}
		return l.emit(tok)
	}
}

// unary reports whether a minus sign at the current position is negation.
func (l *lexer) unary() bool {
	switch l.prev {
	case KindNone, KindOpen, KindFunction, KindOperator:
		return true
	default:
		return false
	}
}

// emit checks a scanned token and records it as the previous token.
func (l *lexer) emit(tok Token) (Token, error) {
	for _, r := range tok.Text {
		if !validRune(r) {
			return tok, &LexError{Text: tok.Text, Kind: tok.Kind.String(), Col: tok.Pos, Err: ErrInvalidCharacter}
		}
	}
	l.prev = tok.Kind
	return tok, nil
}

// scanNum scans the maximal run of digits and decimal points into buf.
func (l *lexer) scanNum(col int) error {
	var dig bool
	dots := 0
	for {
		r, err := l.readRune()
		if err != nil {
			break
		}
		if !isNumeric(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		if r == '.' {
			dots++
		} else {
			dig = true
		}
	}
	if !dig || dots > 1 {
		return &LexError{Text: l.buf.String(), Kind: "number", Col: col, Err: ErrMalformed}
	}
	return nil
}

// scanIdent scans a variable or function name into buf. Function tokens
// include their open bracket.
func (l *lexer) scanIdent(col int) (Kind, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			break
		}
		if !isLetter(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	if l.buf.Len() == 1 {
		return KindVariable, nil
	}
	name := l.buf.String()
	r, err := l.readRune()
	if err != nil || r != '(' {
		if err == nil {
			l.unreadRune()
		}
		return KindNone, &LexError{Text: name, Kind: "function", Col: col, Err: ErrUnknownSymbol}
	}
	l.buf.WriteRune(r)
	if !registered(name) {
		return KindNone, &LexError{Text: name + "(", Kind: "function", Col: col, Err: ErrUnknownSymbol}
	}
	return KindFunction, nil
}
