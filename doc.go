// Package units provides dimensioned quantities, unit conversion and unit
// parsing for Go.
//
// # Overview
//
// A Unit is a scale, an optional offset and a symbol over a Dimensions
// vector such as {length: 1, time: -1}. Applying a unit to a number yields a
// Quantity. Quantities convert between units of the same dimension and
// combine arithmetically, with the dimension algebra checked at runtime.
//
// # Quick Start
//
//	import "github.com/gogpu/units"
//
//	// Build a quantity from a catalog unit
//	d := units.Kilometers.Of(42.195)
//	mi, err := d.In(units.Miles)
//
//	// Parse free text, compound expressions included
//	v, err := units.Parse("10 km/h")
//	f, err := units.Parse("9,81 kg*m/s^2")
//
// # Units
//
// Units are immutable values. Derivations (Mul, Times, Per, Pow,
// WithOffset, WithSymbol, WithSIPrefix) return new units:
//
//	kmh, _ := units.Kilometers.Per(units.Hours)
//	kmh = kmh.WithSymbol("km/h")
//
// Units with an offset (°C, °F) convert correctly in both directions but
// cannot be composed: Times, Per and Pow return an error matching
// ErrAffineComposition.
//
// # Catalog
//
// DefaultCatalog holds the SI base and derived units and common non-SI
// units. It is built once at package initialization and is read-only
// afterwards. Custom catalogs are assembled with a CatalogBuilder.
//
// # Parsing
//
// Parse accepts "<number> <unit>" with a decimal point or comma and spaces
// as digit grouping. Unit parts resolve by exact symbol, then by SI prefix
// ("Mm" is mega-meters), then as an expression of factors joined by "*",
// "·", whitespace and a single "/", with "^n" or superscript powers.
// A Parser memoizes resolved expressions and may be shared by goroutines.
//
// # Kinds
//
// Measure[K] tags a quantity with a kind such as LengthKind or
// FrequencyKind so quantities sharing a dimension vector but not a meaning
// (hertz and becquerels) cannot be mixed at compile time.
//
// # Logging
//
// The package logs nothing by default. Use SetLogger or WithLogger to
// receive debug records about catalog construction and symbol resolution.
package units
