package units

import (
	"math"
	"strconv"
)

// Quantity is an immutable amount expressed in a unit.
//
// Create one by calling Of on a unit:
//
//	d := units.Kilometers.Of(42.195)
//	m, err := d.In(units.Miles)
type Quantity struct {
	amount float64
	unit   Unit
}

// Amount returns the amount in q's unit.
func (q Quantity) Amount() float64 { return q.amount }

// Unit returns the unit q is expressed in.
func (q Quantity) Unit() Unit { return q.unit }

// Dimensions returns the dimension vector of q's unit.
func (q Quantity) Dimensions() Dimensions { return q.unit.dim }

// Value returns the raw amount in q's current unit. For dimensionless
// quantities in the scalar unit this is the canonical numeric value.
func (q Quantity) Value() float64 { return q.amount }

// Base returns the amount converted to the canonical SI base amount of q's
// dimension, honouring the unit offset.
func (q Quantity) Base() float64 {
	return (q.amount - q.unit.offset) * q.unit.scale
}

// In converts q to target. Both units must share a dimension vector.
// The conversion handles affine units in either direction:
//
//	base   = (amount - from.offset) * from.scale
//	result = base / to.scale + to.offset
func (q Quantity) In(target Unit) (Quantity, error) {
	if !q.unit.dim.Equal(target.dim) {
		return Quantity{}, &DimensionMismatchError{Op: "in", Left: q.unit.dim, Right: target.dim}
	}
	return Quantity{amount: convert(q, target), unit: target}, nil
}

// convert returns q's amount expressed in to without checking dimensions.
func convert(q Quantity, to Unit) float64 {
	return q.Base()/to.scale + to.offset
}

// Plus returns q + o expressed in q's unit.
func (q Quantity) Plus(o Quantity) (Quantity, error) {
	r, err := o.in("plus", q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{amount: q.amount + r.amount, unit: q.unit}, nil
}

// Minus returns q - o expressed in q's unit.
func (q Quantity) Minus(o Quantity) (Quantity, error) {
	r, err := o.in("minus", q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{amount: q.amount - r.amount, unit: q.unit}, nil
}

// Mul scales the amount by a dimensionless factor.
func (q Quantity) Mul(f float64) Quantity {
	return Quantity{amount: q.amount * f, unit: q.unit}
}

// Div divides the amount by a dimensionless factor.
func (q Quantity) Div(f float64) Quantity {
	return Quantity{amount: q.amount / f, unit: q.unit}
}

// Times returns the product q·o. Amounts multiply and units combine through
// Unit.Times. When exactly one operand is dimensionless its scale is folded
// into the amount and the other operand's unit is kept, so 3 % × 100 cm is
// 3 cm.
func (q Quantity) Times(o Quantity) (Quantity, error) {
	if r, ok := foldScalar(q, o, false); ok {
		return r, nil
	}
	u, err := q.unit.Times(o.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{amount: q.amount * o.amount, unit: u}, nil
}

// Per returns the quotient q/o.
func (q Quantity) Per(o Quantity) (Quantity, error) {
	if r, ok := foldScalar(q, o, true); ok {
		return r, nil
	}
	u, err := q.unit.Per(o.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{amount: q.amount / o.amount, unit: u}, nil
}

// Squared returns q².
func (q Quantity) Squared() (Quantity, error) { return q.Pow(2) }

// Cubed returns q³.
func (q Quantity) Cubed() (Quantity, error) { return q.Pow(3) }

// Reciprocal returns 1/q.
func (q Quantity) Reciprocal() (Quantity, error) { return q.Pow(-1) }

// Pow raises both amount and unit to the integer power n.
func (q Quantity) Pow(n int) (Quantity, error) {
	u, err := q.unit.Pow(n)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{amount: math.Pow(q.amount, float64(n)), unit: u}, nil
}

// Neg returns -q in the same unit.
func (q Quantity) Neg() Quantity { return Quantity{amount: -q.amount, unit: q.unit} }

// Abs returns |q| in the same unit.
func (q Quantity) Abs() Quantity { return Quantity{amount: math.Abs(q.amount), unit: q.unit} }

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to
// or greater than o, after converting o into q's unit.
func (q Quantity) Compare(o Quantity) (int, error) {
	r, err := o.in("compare", q.unit)
	if err != nil {
		return 0, err
	}
	switch {
	case q.amount < r.amount:
		return -1, nil
	case q.amount > r.amount:
		return 1, nil
	}
	return 0, nil
}

// ApproxEqual reports whether q and o differ by at most tol, measured in q's
// unit.
func (q Quantity) ApproxEqual(o Quantity, tol float64) (bool, error) {
	r, err := o.in("compare", q.unit)
	if err != nil {
		return false, err
	}
	return math.Abs(q.amount-r.amount) <= tol, nil
}

// String formats q as "<amount> <symbol>" in plain decimal notation.
// A quantity in a unit without symbol formats as the bare amount.
func (q Quantity) String() string {
	s := formatAmount(q.amount)
	if q.unit.symbol == "" {
		return s
	}
	return s + " " + q.unit.symbol
}

// in is In with the caller's operation name in the mismatch error.
func (q Quantity) in(op string, target Unit) (Quantity, error) {
	if !q.unit.dim.Equal(target.dim) {
		return Quantity{}, &DimensionMismatchError{Op: op, Left: target.dim, Right: q.unit.dim}
	}
	return q.In(target)
}

// foldScalar handles products and quotients where exactly one side is
// dimensionless and non-affine.
func foldScalar(q, o Quantity, divide bool) (Quantity, bool) {
	qs, os := q.unit.dim.IsDimensionless(), o.unit.dim.IsDimensionless()
	if qs == os || q.unit.IsAffine() || o.unit.IsAffine() {
		return Quantity{}, false
	}
	if os {
		if divide {
			return Quantity{amount: q.amount / (o.amount * o.unit.scale), unit: q.unit}, true
		}
		return Quantity{amount: q.amount * o.amount * o.unit.scale, unit: q.unit}, true
	}
	if divide {
		// scalar / x keeps the reciprocal of x as unit.
		return Quantity{}, false
	}
	return Quantity{amount: q.amount * q.unit.scale * o.amount, unit: o.unit}, true
}

func formatAmount(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
