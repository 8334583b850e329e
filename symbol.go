package units

import (
	"strings"

	"github.com/gogpu/units/internal/expr"
)

// compoundMarks are the runes that make a display symbol an expression
// rather than a single factor.
const compoundMarks = "*·/^⁰¹²³⁴⁵⁶⁷⁸⁹⁻"

// anySymbol joins whitespace-separated words into one factor. Composed
// symbols separate factors with "*", so remaining whitespace belongs to a
// multi-word symbol such as "fl oz".
func anySymbol(string) bool { return true }

// symbolFactors splits sym into factors with signed powers, each multiplied
// by n. Symbols without operators ("fl oz", "°C") and symbols the expression
// grammar rejects are one factor.
func symbolFactors(sym string, n int) []expr.Factor {
	if sym == "" || n == 0 {
		return nil
	}
	if strings.ContainsAny(sym, compoundMarks) {
		if e, err := expr.Parse(sym, expr.JoinSymbols(anySymbol)); err == nil {
			fs := make([]expr.Factor, 0, len(e.Num)+len(e.Den))
			for _, f := range e.Num {
				fs = append(fs, expr.Factor{Symbol: f.Symbol, Power: f.Power * n})
			}
			for _, f := range e.Den {
				fs = append(fs, expr.Factor{Symbol: f.Symbol, Power: -f.Power * n})
			}
			return fs
		}
	}
	return []expr.Factor{{Symbol: sym, Power: n}}
}

// composeSymbol multiplies factor lists into the normalized form the unit
// parser reads back: powers of repeated symbols add up, factors that cancel
// disappear and negative powers move below the fraction bar.
//
//	m * m/s    -> m^2/s
//	s / (km/h) -> s*h/km
func composeSymbol(groups ...[]expr.Factor) string {
	var order []string
	power := make(map[string]int)
	for _, fs := range groups {
		for _, f := range fs {
			if _, ok := power[f.Symbol]; !ok {
				order = append(order, f.Symbol)
			}
			power[f.Symbol] += f.Power
		}
	}

	var e expr.Expr
	for _, s := range order {
		switch n := power[s]; {
		case n > 0:
			e.Num = append(e.Num, expr.Factor{Symbol: s, Power: n})
		case n < 0:
			e.Den = append(e.Den, expr.Factor{Symbol: s, Power: -n})
		}
	}
	if len(e.Num) == 0 && len(e.Den) == 0 {
		return ""
	}
	return e.String()
}
