package units

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Exponent bounds for a single dimension key.
const (
	MinExponent = -7
	MaxExponent = 7
)

// Base dimension keys of the SI.
const (
	KeyLength            = "length"
	KeyMass              = "mass"
	KeyTime              = "time"
	KeyElectricCurrent   = "electricCurrent"
	KeyTemperature       = "temperature"
	KeyAmountOfSubstance = "amountOfSubstance"
	KeyLuminousIntensity = "luminousIntensity"
)

// term is one non-zero entry of a dimension vector.
type term struct {
	key string
	exp int8
}

// Dimensions is an immutable sparse vector mapping base-dimension keys to
// non-zero integer exponents.
//
// The zero value is the dimensionless vector [1]. Entries are kept sorted by
// key and never hold a zero exponent, so two vectors are equal exactly when
// their entries are identical. Operations never modify their operands.
//
// Keys are free-form: besides the seven SI base keys callers may introduce
// their own (for example "bit" or "pixel") and they combine like any other.
type Dimensions struct {
	terms []term
}

// Dimensionless is the empty dimension vector.
var Dimensionless = Dimensions{}

// Base returns the vector {key: 1}.
func Base(key string) Dimensions {
	return Dimensions{terms: []term{{key: key, exp: 1}}}
}

// NewDimensions builds a vector from a map. Zero exponents are dropped.
func NewDimensions(m map[string]int) (Dimensions, error) {
	terms := make([]term, 0, len(m))
	for k, v := range m {
		if v == 0 {
			continue
		}
		if v < MinExponent || v > MaxExponent {
			return Dimensions{}, &OverflowError{Key: k, Left: v, Right: 0}
		}
		terms = append(terms, term{key: k, exp: int8(v)})
	}
	slices.SortFunc(terms, func(a, b term) int { return strings.Compare(a.key, b.key) })
	return Dimensions{terms: terms}, nil
}

// MustDimensions is like NewDimensions but panics on error.
// Intended for package-level variables.
func MustDimensions(m map[string]int) Dimensions {
	d, err := NewDimensions(m)
	if err != nil {
		panic(err)
	}
	return d
}

// Exponent returns the exponent of key, 0 if absent.
func (d Dimensions) Exponent(key string) int {
	i, ok := slices.BinarySearchFunc(d.terms, key, func(t term, k string) int {
		return strings.Compare(t.key, k)
	})
	if !ok {
		return 0
	}
	return int(d.terms[i].exp)
}

// Keys returns the keys with non-zero exponent in sorted order.
func (d Dimensions) Keys() []string {
	keys := make([]string, len(d.terms))
	for i, t := range d.terms {
		keys[i] = t.key
	}
	return keys
}

// Len returns the number of non-zero entries.
func (d Dimensions) Len() int { return len(d.terms) }

// IsDimensionless reports whether d is the empty vector.
func (d Dimensions) IsDimensionless() bool { return len(d.terms) == 0 }

// Map returns a copy of the vector as a map.
func (d Dimensions) Map() map[string]int {
	m := make(map[string]int, len(d.terms))
	for _, t := range d.terms {
		m[t.key] = int(t.exp)
	}
	return m
}

// Equal reports whether d and other hold identical non-zero entries.
// This is the only runtime notion of dimensional compatibility.
func (d Dimensions) Equal(other Dimensions) bool {
	return slices.Equal(d.terms, other.terms)
}

// String formats the vector as "length·time⁻¹". The empty vector is "1".
func (d Dimensions) String() string {
	if len(d.terms) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, t := range d.terms {
		if i > 0 {
			sb.WriteString("·")
		}
		sb.WriteString(t.key)
		if t.exp != 1 {
			sb.WriteString(superscript(int(t.exp)))
		}
	}
	return sb.String()
}

// GoString implements fmt.GoStringer.
func (d Dimensions) GoString() string {
	return fmt.Sprintf("units.Dimensions%v", d.Map())
}

// Times multiplies two vectors by adding exponents.
func Times(a, b Dimensions) (Dimensions, error) {
	return combine(a, b, func(x, y int) int { return x + y })
}

// Over divides a by b by subtracting exponents.
func Over(a, b Dimensions) (Dimensions, error) {
	return combine(a, b, func(x, y int) int { return x - y })
}

// Reciprocal negates every exponent.
func Reciprocal(x Dimensions) (Dimensions, error) {
	return combine(Dimensionless, x, func(_, y int) int { return -y })
}

// Squared doubles every exponent.
func Squared(x Dimensions) (Dimensions, error) {
	return combine(Dimensionless, x, func(_, y int) int { return 2 * y })
}

// Cubed triples every exponent.
func Cubed(x Dimensions) (Dimensions, error) {
	return combine(Dimensionless, x, func(_, y int) int { return 3 * y })
}

// Pow multiplies every exponent by n. Pow(x, 0) is dimensionless.
func Pow(x Dimensions, n int) (Dimensions, error) {
	// Any non-zero exponent times n leaves the range, and n*y may wrap.
	if (n < MinExponent || n > MaxExponent) && len(x.terms) > 0 {
		t := x.terms[0]
		return Dimensions{}, &OverflowError{Key: t.key, Left: int(t.exp), Right: n}
	}
	return combine(Dimensionless, x, func(_, y int) int { return n * y })
}

// combine walks the sorted key union of a and b, applying f to each pair of
// exponents (missing keys count as 0) and dropping zero results.
func combine(a, b Dimensions, f func(x, y int) int) (Dimensions, error) {
	out := make([]term, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(a.terms) || j < len(b.terms) {
		var key string
		var x, y int
		switch {
		case j >= len(b.terms) || (i < len(a.terms) && a.terms[i].key < b.terms[j].key):
			key, x = a.terms[i].key, int(a.terms[i].exp)
			i++
		case i >= len(a.terms) || b.terms[j].key < a.terms[i].key:
			key, y = b.terms[j].key, int(b.terms[j].exp)
			j++
		default:
			key, x, y = a.terms[i].key, int(a.terms[i].exp), int(b.terms[j].exp)
			i++
			j++
		}

		v := f(x, y)
		if v == 0 {
			continue
		}
		if v < MinExponent || v > MaxExponent {
			return Dimensions{}, &OverflowError{Key: key, Left: x, Right: y}
		}
		out = append(out, term{key: key, exp: int8(v)})
	}
	if len(out) == 0 {
		return Dimensionless, nil
	}
	return Dimensions{terms: out}, nil
}

var superscriptDigits = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

func superscript(n int) string {
	var sb strings.Builder
	if n < 0 {
		sb.WriteString("⁻")
		n = -n
	}
	for _, c := range strconv.Itoa(n) {
		sb.WriteString(superscriptDigits[c-'0'])
	}
	return sb.String()
}

// Common dimension vectors.
var (
	Length            = Base(KeyLength)
	Mass              = Base(KeyMass)
	Time              = Base(KeyTime)
	Current           = Base(KeyElectricCurrent)
	Temperature       = Base(KeyTemperature)
	AmountOfSubstance = Base(KeyAmountOfSubstance)
	LuminousIntensity = Base(KeyLuminousIntensity)

	Area              = MustDimensions(map[string]int{KeyLength: 2})
	Volume            = MustDimensions(map[string]int{KeyLength: 3})
	Speed             = MustDimensions(map[string]int{KeyLength: 1, KeyTime: -1})
	Acceleration      = MustDimensions(map[string]int{KeyLength: 1, KeyTime: -2})
	Frequency         = MustDimensions(map[string]int{KeyTime: -1})
	Force             = MustDimensions(map[string]int{KeyMass: 1, KeyLength: 1, KeyTime: -2})
	Energy            = MustDimensions(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -2})
	Power             = MustDimensions(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -3})
	Pressure          = MustDimensions(map[string]int{KeyMass: 1, KeyLength: -1, KeyTime: -2})
	Charge            = MustDimensions(map[string]int{KeyTime: 1, KeyElectricCurrent: 1})
	Voltage           = MustDimensions(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -3, KeyElectricCurrent: -1})
	Resistance        = MustDimensions(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -3, KeyElectricCurrent: -2})
	Conductance       = MustDimensions(map[string]int{KeyMass: -1, KeyLength: -2, KeyTime: 3, KeyElectricCurrent: 2})
	Capacitance       = MustDimensions(map[string]int{KeyMass: -1, KeyLength: -2, KeyTime: 4, KeyElectricCurrent: 2})
	Inductance        = MustDimensions(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -2, KeyElectricCurrent: -2})
	MagneticFlux      = MustDimensions(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -2, KeyElectricCurrent: -1})
	MagneticInduction = MustDimensions(map[string]int{KeyMass: 1, KeyTime: -2, KeyElectricCurrent: -1})
	Illuminance       = MustDimensions(map[string]int{KeyLuminousIntensity: 1, KeyLength: -2})
	AbsorbedDose      = MustDimensions(map[string]int{KeyLength: 2, KeyTime: -2})
)
