package units

import "math"

// Unit is an immutable unit of measurement.
//
// A unit converts its amounts to the canonical SI amount of its dimension
// with
//
//	base = (amount - offset) * scale
//
// Offset is zero for every ratio-scale unit; it is only set on affine anchors
// such as °C and °F. Every derivation returns a new Unit.
type Unit struct {
	scale  float64
	offset float64
	symbol string
	dim    Dimensions
	// prefixable marks units a parser may prepend an SI prefix to.
	prefixable bool
}

// MakeUnit returns a base unit with scale 1 and no offset. Parsers accept it
// with SI prefixes ("km" for a unit "m").
func MakeUnit(symbol string, dim Dimensions) Unit {
	return Unit{scale: 1, symbol: symbol, dim: dim, prefixable: true}
}

// Scale returns the factor converting an amount of u to the SI base amount.
func (u Unit) Scale() float64 { return u.scale }

// Offset returns the affine offset of u.
func (u Unit) Offset() float64 { return u.offset }

// Symbol returns the display symbol.
func (u Unit) Symbol() string { return u.symbol }

// Dimensions returns the dimension vector.
func (u Unit) Dimensions() Dimensions { return u.dim }

// IsAffine reports whether u carries a non-zero offset.
func (u Unit) IsAffine() bool { return u.offset != 0 }

// AcceptsPrefix reports whether parsers synthesize SI-prefixed forms of u.
// Units made with MakeUnit accept prefixes; scaled, prefixed and composed
// units do not, unless a CatalogBuilder marks them.
func (u Unit) AcceptsPrefix() bool { return u.prefixable && u.offset == 0 && u.symbol != "" }

// Compatible reports whether amounts of u can be converted to v.
func (u Unit) Compatible(v Unit) bool { return u.dim.Equal(v.dim) }

// Equal reports whether u and v are interchangeable: same scale, offset,
// dimension and symbol.
func (u Unit) Equal(v Unit) bool {
	return u.scale == v.scale && u.offset == v.offset && u.symbol == v.symbol && u.dim.Equal(v.dim)
}

// String returns the symbol.
func (u Unit) String() string { return u.symbol }

// Of returns the quantity of amount v expressed in u.
func (u Unit) Of(v float64) Quantity {
	return Quantity{amount: v, unit: u}
}

// Mul scales u by f. The symbol is cleared; derive a display symbol with
// WithSymbol. The offset is kept and stays expressed in the new unit's
// amounts.
func (u Unit) Mul(f float64) Unit {
	return Unit{scale: u.scale * f, offset: u.offset, dim: u.dim}
}

// Div is Mul(1/f) without the intermediate rounding.
func (u Unit) Div(f float64) Unit {
	return Unit{scale: u.scale / f, offset: u.offset, dim: u.dim}
}

// Times returns the product unit u·v.
func (u Unit) Times(v Unit) (Unit, error) {
	if err := rejectAffine("times", u, v); err != nil {
		return Unit{}, err
	}
	dim, err := Times(u.dim, v.dim)
	if err != nil {
		return Unit{}, err
	}
	return Unit{scale: u.scale * v.scale, symbol: composeSymbol(symbolFactors(u.symbol, 1), symbolFactors(v.symbol, 1)), dim: dim}, nil
}

// Per returns the quotient unit u/v.
func (u Unit) Per(v Unit) (Unit, error) {
	if err := rejectAffine("per", u, v); err != nil {
		return Unit{}, err
	}
	dim, err := Over(u.dim, v.dim)
	if err != nil {
		return Unit{}, err
	}
	return Unit{scale: u.scale / v.scale, symbol: composeSymbol(symbolFactors(u.symbol, 1), symbolFactors(v.symbol, -1)), dim: dim}, nil
}

// Squared returns u².
func (u Unit) Squared() (Unit, error) { return u.Pow(2) }

// Cubed returns u³.
func (u Unit) Cubed() (Unit, error) { return u.Pow(3) }

// Reciprocal returns 1/u.
func (u Unit) Reciprocal() (Unit, error) { return u.Pow(-1) }

// Pow raises u to the integer power n. A negative n yields the reciprocal
// raised to |n|; Pow(0) is the dimensionless unit with scale 1.
func (u Unit) Pow(n int) (Unit, error) {
	if err := rejectAffine("pow", u); err != nil {
		return Unit{}, err
	}
	dim, err := Pow(u.dim, n)
	if err != nil {
		return Unit{}, err
	}
	return Unit{scale: math.Pow(u.scale, float64(n)), symbol: composeSymbol(symbolFactors(u.symbol, n)), dim: dim}, nil
}

// WithOffset returns u with offset delta. It is meant to be applied once, to
// the anchor of an affine scale:
//
//	celsius := kelvin.WithOffset(-273.15).WithSymbol("°C")
func (u Unit) WithOffset(delta float64) Unit {
	u.offset = delta
	return u
}

// WithSymbol returns u displayed as s.
func (u Unit) WithSymbol(s string) Unit {
	u.symbol = s
	return u
}

// WithSIPrefix returns u scaled by the SI prefix and with the prefix
// prepended to its symbol. Affine units cannot be prefixed.
func (u Unit) WithSIPrefix(prefix string) (Unit, error) {
	if err := rejectAffine("prefix", u); err != nil {
		return Unit{}, err
	}
	p, ok := LookupPrefix(prefix)
	if !ok {
		return Unit{}, &prefixError{prefix: prefix}
	}
	return Unit{scale: u.scale * p.Factor, symbol: p.Symbol + u.symbol, dim: u.dim}, nil
}

type prefixError struct{ prefix string }

func (e *prefixError) Error() string { return "units: unknown SI prefix: " + e.prefix }
func (e *prefixError) Unwrap() error { return ErrUnknownPrefix }

func rejectAffine(op string, us ...Unit) error {
	for _, u := range us {
		if u.offset != 0 {
			return &AffineError{Op: op, Symbol: u.symbol, Offset: u.offset}
		}
	}
	return nil
}
