package units

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failure returned by this package matches one
// of these via errors.Is.
var (
	// ErrOverflow is returned when a dimension exponent leaves
	// [MinExponent, MaxExponent].
	ErrOverflow = errors.New("units: dimension exponent overflow")

	// ErrDimensionMismatch is returned when quantities or units with
	// different dimension vectors are converted, added or compared.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrUnknownUnit is returned when a symbol resolves neither through the
	// registry nor through SI-prefix decomposition.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrInvalidFormat is returned when a string does not have the
	// "<number> <unit>" shape.
	ErrInvalidFormat = errors.New("units: invalid format")

	// ErrInvalidNumber is returned when the numeric part of a quantity string
	// cannot be parsed.
	ErrInvalidNumber = errors.New("units: invalid number")

	// ErrAffineComposition is returned when a unit carrying an offset
	// (°C, °F) is multiplied, divided or raised to a power.
	ErrAffineComposition = errors.New("units: composition of affine unit")

	// ErrUnknownPrefix is returned by WithSIPrefix for an unsupported prefix.
	ErrUnknownPrefix = errors.New("units: unknown SI prefix")

	// ErrCatalog is returned by CatalogBuilder.Build for an inconsistent
	// definition list.
	ErrCatalog = errors.New("units: invalid catalog")
)

// OverflowError reports the dimension key and the operand exponents whose
// combination left the representable range.
type OverflowError struct {
	Key         string
	Left, Right int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("units: overflow in %s when combining %d and %d", e.Key, e.Left, e.Right)
}

// Unwrap returns ErrOverflow.
func (e *OverflowError) Unwrap() error { return ErrOverflow }

// DimensionMismatchError carries both dimension vectors of a failed
// conversion or addition.
type DimensionMismatchError struct {
	Op          string
	Left, Right Dimensions
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("units: %s: dimension mismatch: %s vs %s", e.Op, e.Left, e.Right)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// UnknownUnitError names the symbol that could not be resolved. Cause is set
// when the symbol was a malformed compound expression.
type UnknownUnitError struct {
	Symbol string
	Cause  error
}

func (e *UnknownUnitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("units: unknown unit: %q: %v", e.Symbol, e.Cause)
	}
	return fmt.Sprintf("units: unknown unit: %q", e.Symbol)
}

// Unwrap returns ErrUnknownUnit and, when set, the cause.
func (e *UnknownUnitError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUnknownUnit, e.Cause}
	}
	return []error{ErrUnknownUnit}
}

// AffineError names the operation and the offending affine unit.
type AffineError struct {
	Op     string
	Symbol string
	Offset float64
}

func (e *AffineError) Error() string {
	return fmt.Sprintf("units: %s: unit %q has offset %g and cannot be composed", e.Op, e.Symbol, e.Offset)
}

// Unwrap returns ErrAffineComposition.
func (e *AffineError) Unwrap() error { return ErrAffineComposition }
