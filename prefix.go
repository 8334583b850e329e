package units

// Prefix is an SI decimal prefix.
type Prefix struct {
	Symbol string
	Name   string
	Factor float64
}

// Prefixes lists the SI prefixes from largest to smallest.
var Prefixes = []Prefix{
	{"Q", "quetta", 1e30},
	{"R", "ronna", 1e27},
	{"Y", "yotta", 1e24},
	{"Z", "zetta", 1e21},
	{"E", "exa", 1e18},
	{"P", "peta", 1e15},
	{"T", "tera", 1e12},
	{"G", "giga", 1e9},
	{"M", "mega", 1e6},
	{"k", "kilo", 1e3},
	{"h", "hecto", 1e2},
	{"da", "deca", 1e1},
	{"d", "deci", 1e-1},
	{"c", "centi", 1e-2},
	{"m", "milli", 1e-3},
	{"μ", "micro", 1e-6},
	{"n", "nano", 1e-9},
	{"p", "pico", 1e-12},
	{"f", "femto", 1e-15},
	{"a", "atto", 1e-18},
	{"z", "zepto", 1e-21},
	{"y", "yocto", 1e-24},
	{"r", "ronto", 1e-27},
	{"q", "quecto", 1e-30},
}

// prefixAliases maps alternative spellings onto the canonical prefix symbol.
// "µ" is U+00B5 MICRO SIGN; the canonical form is U+03BC.
var prefixAliases = map[string]string{
	"u": "μ",
	"µ": "μ",
}

var prefixBySymbol = func() map[string]Prefix {
	m := make(map[string]Prefix, len(Prefixes)+len(prefixAliases))
	for _, p := range Prefixes {
		m[p.Symbol] = p
	}
	for alias, canonical := range prefixAliases {
		m[alias] = m[canonical]
	}
	return m
}()

// LookupPrefix returns the prefix for symbol, accepting "u" and the micro
// sign as spellings of μ. The returned Prefix always carries the canonical
// symbol.
func LookupPrefix(symbol string) (Prefix, bool) {
	p, ok := prefixBySymbol[symbol]
	return p, ok
}

// prefixSplit is one candidate decomposition of a symbol.
type prefixSplit struct {
	prefix Prefix
	rest   string
}

// splitPrefix returns every (prefix, remainder) split of symbol where the
// leading part is a known prefix and the remainder is non-empty. Two-rune
// prefixes are tried before single-rune ones.
func splitPrefix(symbol string) []prefixSplit {
	var out []prefixSplit
	runes := []rune(symbol)
	for n := 2; n >= 1; n-- {
		if len(runes) <= n {
			continue
		}
		if p, ok := prefixBySymbol[string(runes[:n])]; ok {
			out = append(out, prefixSplit{prefix: p, rest: string(runes[n:])})
		}
	}
	return out
}
