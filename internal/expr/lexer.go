package expr

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokSymbol
	tokNumber
	tokStar
	tokSlash
	tokCaret
	tokMinus
	tokSuper
	tokInvalid
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokSymbol:
		return "symbol"
	case tokNumber:
		return "number"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokCaret:
		return "'^'"
	case tokMinus:
		return "'-'"
	case tokSuper:
		return "superscript exponent"
	}
	return "invalid character"
}

type token struct {
	kind tokenKind
	text string
	pos  int
	// space is set when whitespace separated this token from the previous one.
	space bool
	// super holds the value of a tokSuper run.
	super int
}

type lexer struct {
	s string
	i int
}

var superDigits = map[rune]int{
	'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4,
	'⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,
}

const superMinus = '⁻'

func isSuper(r rune) bool {
	_, ok := superDigits[r]
	return ok || r == superMinus
}

func isOperator(r rune) bool {
	switch r {
	case '*', '·', '/', '^', '-', '+', '(', ')':
		return true
	}
	return false
}

func isSymbolRune(r rune) bool {
	return !unicode.IsSpace(r) && !isOperator(r) && !isSuper(r) && !('0' <= r && r <= '9')
}

func (l *lexer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(l.s[l.i:])
}

func (l *lexer) next() token {
	space := false
	for l.i < len(l.s) {
		r, n := l.peekRune()
		if !unicode.IsSpace(r) {
			break
		}
		space = true
		l.i += n
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i, space: space}
	}

	start := l.i
	r, n := l.peekRune()
	single := func(kind tokenKind) token {
		l.i += n
		return token{kind: kind, text: l.s[start:l.i], pos: start, space: space}
	}
	switch r {
	case '*', '·':
		return single(tokStar)
	case '/':
		return single(tokSlash)
	case '^':
		return single(tokCaret)
	case '-':
		return single(tokMinus)
	case '+', '(', ')':
		return single(tokInvalid)
	}

	switch {
	case '0' <= r && r <= '9':
		for l.i < len(l.s) && '0' <= l.s[l.i] && l.s[l.i] <= '9' {
			l.i++
		}
		return token{kind: tokNumber, text: l.s[start:l.i], pos: start, space: space}
	case isSuper(r):
		return l.scanSuper(start, space)
	case r == utf8.RuneError && n <= 1:
		return single(tokInvalid)
	}

	for l.i < len(l.s) {
		r, n := l.peekRune()
		if !isSymbolRune(r) {
			break
		}
		l.i += n
	}
	return token{kind: tokSymbol, text: l.s[start:l.i], pos: start, space: space}
}

// scanSuper reads a run such as "⁻²" into a signed integer.
func (l *lexer) scanSuper(start int, space bool) token {
	neg := false
	if r, n := l.peekRune(); r == superMinus {
		neg = true
		l.i += n
	}
	v, digits := 0, 0
	for l.i < len(l.s) {
		r, n := l.peekRune()
		d, ok := superDigits[r]
		if !ok {
			break
		}
		v = v*10 + d
		digits++
		l.i += n
		if v > maxPower {
			break
		}
	}
	tok := token{kind: tokSuper, text: l.s[start:l.i], pos: start, space: space, super: v}
	if digits == 0 {
		tok.kind = tokInvalid
	}
	if neg {
		tok.super = -v
	}
	return tok
}
