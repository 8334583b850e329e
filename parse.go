package units

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/gogpu/units/internal/cache"
)

// quantityPattern splits a quantity string into its numeric literal and the
// unit remainder. The numeric class is greedy, so digit grouping with spaces
// and a decimal comma stay in the first group.
var quantityPattern = regexp.MustCompile(`^([+-]?[\d.,\s]+)\s*(.*)$`)

// Parser parses quantity strings against one registry.
//
// A Parser memoizes resolved unit expressions and is safe for concurrent use.
// Reusing one Parser is cheaper than calling Parse with options repeatedly.
type Parser struct {
	registry Registry
	compound bool
	logger   *slog.Logger
	units    *cache.Cache[string, Unit]
}

// NewParser creates a parser. Without options it resolves symbols against the
// default catalog and accepts compound expressions.
func NewParser(opts ...ParseOption) *Parser {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = defaultCatalog
	}

	p := &Parser{
		registry: o.registry,
		compound: o.compound,
		logger:   o.logger,
	}
	if o.cacheSize >= 0 {
		p.units = cache.New[string, Unit](o.cacheSize)
		p.units.OnEvict(func(key string, _ Unit) {
			p.log().Debug("units: expression evicted", "expr", key)
		})
	}
	return p
}

// Parse reads a quantity such as "10 m", "10,5 km/h", "-5 °C" or
// "9.81 m/s^2".
//
// Errors match ErrInvalidFormat when the input has no "<number> <unit>"
// shape, ErrInvalidNumber when the number does not parse and ErrUnknownUnit
// when the unit cannot be resolved.
func (p *Parser) Parse(input string) (Quantity, error) {
	num, sym, err := splitQuantity(input)
	if err != nil {
		return Quantity{}, err
	}
	amount, err := parseAmount(num)
	if err != nil {
		return Quantity{}, err
	}
	u, err := p.ParseUnit(sym)
	if err != nil {
		return Quantity{}, err
	}
	return u.Of(amount), nil
}

// ParseUnit resolves a unit symbol or, when compound parsing is enabled, a
// unit expression such as "kg*m/s^2" or "1/min".
func (p *Parser) ParseUnit(s string) (Unit, error) {
	s = NormalizeSymbol(s)
	if !p.compound {
		if u, ok := p.registry.Lookup(s); ok {
			return u, nil
		}
		p.log().Debug("units: unresolved symbol", "symbol", s)
		return Unit{}, &UnknownUnitError{Symbol: s}
	}

	r := resolver{reg: p.registry, log: p.log()}
	if p.units == nil {
		return r.expression(s)
	}
	return p.units.GetOrCreate(s, func() (Unit, error) {
		return r.expression(s)
	})
}

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}

// defaultParser serves Parse and ParseUnit calls without options.
var defaultParser = sync.OnceValue(func() *Parser { return NewParser() })

// Parse reads a quantity string. Without options it uses the default catalog
// with compound expressions; see WithUnits, WithUnitMap and WithCatalog to
// change the registry.
//
//	q, err := units.Parse("10 km/h")
//	q, err = units.Parse("5 km", units.WithUnits(units.Meters, units.Kilometers))
func Parse(input string, opts ...ParseOption) (Quantity, error) {
	return parserFor(opts).Parse(input)
}

// ParseUnit resolves a unit symbol or expression.
func ParseUnit(s string, opts ...ParseOption) (Unit, error) {
	return parserFor(opts).ParseUnit(s)
}

// MustParse is like Parse but panics on error. It simplifies initialization
// of package-level quantities.
func MustParse(input string, opts ...ParseOption) Quantity {
	q, err := Parse(input, opts...)
	if err != nil {
		panic(err)
	}
	return q
}

// parserFor returns the shared parser, or a one-shot parser without a cache
// when options are given.
func parserFor(opts []ParseOption) *Parser {
	if len(opts) == 0 {
		return defaultParser()
	}
	return NewParser(append(opts[:len(opts):len(opts)], WithCacheSize(-1))...)
}

// splitQuantity separates the numeric literal from the unit part.
func splitQuantity(input string) (num, sym string, err error) {
	s := strings.TrimSpace(input)
	m := quantityPattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", &formatError{input: input}
	}
	num, sym = m[1], strings.TrimSpace(m[2])

	// "5 1/min": the greedy numeric class swallowed the 1 of the unit.
	if strings.HasPrefix(sym, "/") {
		fields := strings.Fields(num)
		if n := len(fields); n > 1 && fields[n-1] == "1" {
			num = strings.Join(fields[:n-1], " ")
			sym = "1" + sym
		}
	}

	if strings.TrimSpace(num) == "" || sym == "" {
		return "", "", &formatError{input: input}
	}
	return num, sym, nil
}

// parseAmount reads a numeric literal with an optional decimal comma and
// whitespace digit grouping.
func parseAmount(num string) (float64, error) {
	clean := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == ',':
			return '.'
		}
		return r
	}, num)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, &numberError{literal: strings.TrimSpace(num), err: err}
	}
	return v, nil
}

type formatError struct {
	input string
}

func (e *formatError) Error() string {
	return "units: invalid format: " + strconv.Quote(e.input) + ": want <number> <unit>"
}

func (e *formatError) Unwrap() error { return ErrInvalidFormat }

type numberError struct {
	literal string
	err     error
}

func (e *numberError) Error() string {
	return "units: invalid number: " + strconv.Quote(e.literal)
}

func (e *numberError) Unwrap() []error { return []error{ErrInvalidNumber, e.err} }
