package units

import (
	"log/slog"

	"github.com/gogpu/units/internal/expr"
)

// resolver turns unit symbols and expressions into units against one
// registry.
type resolver struct {
	reg Registry
	log *slog.Logger
}

// symbol resolves a single factor symbol: exact registry match first, then
// SI-prefix decomposition onto a registry unit that accepts prefixes. The
// remainder must not carry a prefix itself, so "kkm" stays unknown.
func (r resolver) symbol(sym string) (Unit, error) {
	if u, ok := r.reg.Lookup(sym); ok {
		return u, nil
	}
	for _, s := range splitPrefix(sym) {
		base, ok := r.reg.Lookup(s.rest)
		if !ok || !base.AcceptsPrefix() {
			continue
		}
		u := Unit{scale: s.prefix.Factor * base.scale, symbol: s.prefix.Symbol + base.symbol, dim: base.dim}
		r.log.Debug("units: synthesized prefixed unit",
			"symbol", u.symbol, "prefix", s.prefix.Name, "base", base.symbol, "scale", u.scale)
		return u, nil
	}
	r.log.Debug("units: unresolved symbol", "symbol", sym)
	return Unit{}, &UnknownUnitError{Symbol: sym}
}

// expression resolves a normalized unit expression. The whole string is
// tried as an exact symbol first so catalog symbols containing operators
// ("m/s²", "fl oz") resolve to their catalog unit.
func (r resolver) expression(s string) (Unit, error) {
	if s == "" {
		return Unit{}, &UnknownUnitError{Symbol: s}
	}
	if u, ok := r.reg.Lookup(s); ok {
		return u, nil
	}
	e, err := expr.Parse(s, expr.JoinSymbols(r.known))
	if err != nil {
		return Unit{}, &UnknownUnitError{Symbol: s, Cause: err}
	}

	num, numFs, err := r.product(e.Num)
	if err != nil {
		return Unit{}, err
	}
	if len(e.Den) == 0 && len(e.Num) == 1 && e.Num[0].Power == 1 {
		return num, nil
	}
	den, denFs, err := r.product(e.Den)
	if err != nil {
		return Unit{}, err
	}
	u, err := num.Per(den)
	if err != nil {
		return Unit{}, err
	}

	// The symbol is regenerated from the resolved factors so synthesized
	// prefixes appear in canonical form ("us" becomes "μs").
	canon := expr.Expr{Num: numFs, Den: denFs}
	return u.WithSymbol(canon.String()), nil
}

// known reports whether the registry has an exact entry for symbol, letting
// multi-word symbols such as "fl oz" stay whole inside expressions.
func (r resolver) known(symbol string) bool {
	_, ok := r.reg.Lookup(symbol)
	return ok
}

// product multiplies the resolved factors, starting from the dimensionless
// unit. It also returns the factors rewritten with the resolved symbols.
func (r resolver) product(fs []expr.Factor) (Unit, []expr.Factor, error) {
	out := MakeUnit("", Dimensionless)
	var canon []expr.Factor
	for _, f := range fs {
		u, err := r.symbol(f.Symbol)
		if err != nil {
			return Unit{}, nil, err
		}
		canon = append(canon, expr.Factor{Symbol: u.symbol, Power: f.Power})
		if f.Power != 1 {
			if u, err = u.Pow(f.Power); err != nil {
				return Unit{}, nil, err
			}
		}
		if out, err = out.Times(u); err != nil {
			return Unit{}, nil, err
		}
	}
	return out, canon, nil
}
