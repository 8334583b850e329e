package units

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits limits localized output to the digits a float64 holds.
const maxFractionDigits = 15

// Format renders q with the decimal separator of tag and without digit
// grouping, so the result parses back with Parse:
//
//	units.Meters.Of(10.5).Format(language.German)  // "10,5 m"
//	units.Meters.Of(10.5).Format(language.English) // "10.5 m"
func (q Quantity) Format(tag language.Tag) string {
	s := FormatAmount(q.amount, tag)
	if q.unit.symbol == "" {
		return s
	}
	return s + " " + q.unit.symbol
}

// FormatAmount renders v with the decimal separator of tag and without digit
// grouping.
func FormatAmount(v float64, tag language.Tag) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return formatAmount(v)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.NoSeparator(), number.MaxFractionDigits(maxFractionDigits)))
}
