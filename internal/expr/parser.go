package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("expr: syntax error")

// maxPower bounds explicit exponents; anything larger cannot be a valid
// dimension exponent and is rejected early.
const maxPower = 99

// Factor is a unit symbol raised to a non-zero integer power.
type Factor struct {
	Symbol string
	Power  int
}

func (f Factor) String() string {
	if f.Power == 1 {
		return f.Symbol
	}
	return f.Symbol + "^" + strconv.Itoa(f.Power)
}

// Expr is a parsed unit expression: the product of Num divided by the
// product of Den. After Parse every power is positive; reciprocal factors
// written as "1/x" or "x^-1" are moved to the opposite side.
type Expr struct {
	Num []Factor
	Den []Factor
}

// String returns the normalized form, for example "kg*m/s^2" or "1/min".
// Parse(e.String()) yields an equal Expr.
func (e *Expr) String() string {
	var sb strings.Builder
	if len(e.Num) == 0 && len(e.Den) > 1 {
		// "1/a*b" would read back as b/a.
		inv := make([]Factor, len(e.Den))
		for i, f := range e.Den {
			inv[i] = Factor{Symbol: f.Symbol, Power: -f.Power}
		}
		writeFactors(&sb, inv)
		return sb.String()
	}
	if len(e.Num) == 0 {
		sb.WriteString("1")
	}
	writeFactors(&sb, e.Num)
	if len(e.Den) > 0 {
		sb.WriteString("/")
		writeFactors(&sb, e.Den)
	}
	return sb.String()
}

func writeFactors(sb *strings.Builder, fs []Factor) {
	for i, f := range fs {
		if i > 0 {
			sb.WriteString("*")
		}
		sb.WriteString(f.String())
	}
}

// Parse parses a unit expression:
//
//	expr   := term ("/" term)?
//	term   := factor (("*" | "·" | whitespace) factor)*
//	factor := ["1/"] symbol [power]
//	power  := "^" ["-"] integer | superscript+
//
// Whitespace between two symbols multiplies them unless an option such as
// JoinSymbols says the joined text is one symbol.
func Parse(s string, opts ...Option) (*Expr, error) {
	p := &parser{l: lexer{s: s}}
	for _, opt := range opts {
		opt(p)
	}
	p.next()

	num, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	var den []Factor
	if p.cur.kind == tokSlash {
		p.next()
		if den, err = p.parseTerm(); err != nil {
			return nil, err
		}
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return normalize(num, den), nil
}

// Option configures Parse.
type Option func(*parser)

// JoinSymbols makes Parse read whitespace-separated symbols as one symbol
// ("fl oz") when known reports the space-joined text as a symbol. Joining is
// greedy and stops at the first unknown extension.
func JoinSymbols(known func(symbol string) bool) Option {
	return func(p *parser) {
		p.known = known
	}
}

type parser struct {
	l     lexer
	cur   token
	peek  *token
	known func(string) bool
}

func (p *parser) next() {
	if p.peek != nil {
		p.cur, p.peek = *p.peek, nil
		return
	}
	p.cur = p.l.next()
}

func (p *parser) lookahead() token {
	if p.peek == nil {
		t := p.l.next()
		p.peek = &t
	}
	return *p.peek
}

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %s %q at offset %d", ErrSyntax, p.cur.kind, p.cur.text, p.cur.pos)
}

func (p *parser) parseTerm() ([]Factor, error) {
	f, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	out := []Factor{f}
	for {
		switch {
		case p.cur.kind == tokStar:
			p.next()
		case p.cur.space && (p.cur.kind == tokSymbol || p.cur.kind == tokNumber):
			// implicit multiplication: "N m"
		default:
			return out, nil
		}
		if f, err = p.parseFactor(); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
}

func (p *parser) parseFactor() (Factor, error) {
	recip := false
	if p.cur.kind == tokNumber && p.cur.text == "1" && p.lookahead().kind == tokSlash {
		p.next()
		p.next()
		recip = true
	}
	if p.cur.kind != tokSymbol {
		return Factor{}, p.unexpected()
	}
	f := Factor{Symbol: p.cur.text, Power: 1}
	p.next()
	for p.known != nil && p.cur.kind == tokSymbol && p.cur.space {
		joined := f.Symbol + " " + p.cur.text
		if !p.known(joined) {
			break
		}
		f.Symbol = joined
		p.next()
	}

	switch {
	case p.cur.kind == tokCaret:
		p.next()
		neg := false
		if p.cur.kind == tokMinus {
			neg = true
			p.next()
		}
		if p.cur.kind != tokNumber {
			return Factor{}, p.unexpected()
		}
		n, err := strconv.Atoi(p.cur.text)
		if err != nil || n > maxPower {
			return Factor{}, fmt.Errorf("%w: exponent %q out of range", ErrSyntax, p.cur.text)
		}
		if neg {
			n = -n
		}
		f.Power = n
		p.next()
	case p.cur.kind == tokSuper && !p.cur.space:
		f.Power = p.cur.super
		p.next()
	}
	if f.Power == 0 {
		return Factor{}, fmt.Errorf("%w: zero exponent on %q", ErrSyntax, f.Symbol)
	}
	if recip {
		f.Power = -f.Power
	}
	return f, nil
}

// normalize moves negative powers to the other side of the fraction bar.
func normalize(num, den []Factor) *Expr {
	e := &Expr{}
	for _, f := range num {
		if f.Power < 0 {
			e.Den = append(e.Den, Factor{Symbol: f.Symbol, Power: -f.Power})
			continue
		}
		e.Num = append(e.Num, f)
	}
	for _, f := range den {
		if f.Power < 0 {
			e.Num = append(e.Num, Factor{Symbol: f.Symbol, Power: -f.Power})
			continue
		}
		e.Den = append(e.Den, f)
	}
	return e
}
