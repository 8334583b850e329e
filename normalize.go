package units

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// symbolFolds maps compatibility characters that users type for unit
// symbols onto the forms the catalog uses. NFC already folds the ohm sign
// (U+2126) and the angstrom sign (U+212B).
var symbolFolds = map[rune]string{
	'µ': "μ",  // U+00B5 MICRO SIGN
	'℃': "°C", // U+2103
	'℉': "°F", // U+2109
	'˚': "°",  // U+02DA RING ABOVE
	'º': "°",  // U+00BA MASCULINE ORDINAL
	'×': "*",
	'∙': "·",
	'⋅': "·",
	'−': "-", // U+2212 MINUS SIGN
}

// foldRunes rewrites single-rune folds. Multi-rune replacements are applied
// afterwards by expandFolds since runes.Map is rune-to-rune.
var foldRunes = runes.Map(func(r rune) rune {
	if s, ok := symbolFolds[r]; ok && len([]rune(s)) == 1 {
		return []rune(s)[0]
	}
	return r
})

var expandFolds = func() *strings.Replacer {
	var pairs []string
	for r, s := range symbolFolds {
		if len([]rune(s)) > 1 {
			pairs = append(pairs, string(r), s)
		}
	}
	return strings.NewReplacer(pairs...)
}()

// NormalizeSymbol returns s in the canonical form used for registry lookups:
// NFC-composed, surrounding whitespace trimmed, and common look-alike
// characters (micro sign, ℃, ℉, ×, U+2212) folded.
func NormalizeSymbol(s string) string {
	t := transform.Chain(norm.NFC, foldRunes)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(expandFolds.Replace(out))
}
