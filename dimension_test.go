package units

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDimensionsTimes(t *testing.T) {
	tests := []struct {
		name string
		a, b Dimensions
		want map[string]int
	}{
		{"length*length", Length, Length, map[string]int{KeyLength: 2}},
		{"length*per length", Length, MustDimensions(map[string]int{KeyLength: -1}), map[string]int{}},
		{"mass*acceleration", Mass, Acceleration, map[string]int{KeyMass: 1, KeyLength: 1, KeyTime: -2}},
		{"dimensionless", Dimensionless, Speed, map[string]int{KeyLength: 1, KeyTime: -1}},
		{"custom key", Base("bit"), Frequency, map[string]int{"bit": 1, KeyTime: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Times(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Times: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Map()); diff != "" {
				t.Errorf("Times mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDimensionsOver(t *testing.T) {
	got, err := Over(Energy, Time)
	if err != nil {
		t.Fatalf("Over: %v", err)
	}
	if !got.Equal(Power) {
		t.Errorf("Over(Energy, Time) = %v, want %v", got, Power)
	}

	got, err = Over(Length, Length)
	if err != nil {
		t.Fatalf("Over: %v", err)
	}
	if !got.IsDimensionless() {
		t.Errorf("Over(Length, Length) = %v, want dimensionless", got)
	}
}

func TestDimensionsReciprocalCancels(t *testing.T) {
	for _, d := range []Dimensions{Length, Mass, Time, Current, Temperature, AmountOfSubstance, LuminousIntensity, Force, Voltage} {
		r, err := Reciprocal(d)
		if err != nil {
			t.Fatalf("Reciprocal(%v): %v", d, err)
		}
		got, err := Times(d, r)
		if err != nil {
			t.Fatalf("Times: %v", err)
		}
		if !got.IsDimensionless() || got.Len() != 0 {
			t.Errorf("Times(%v, Reciprocal) = %v, want dimensionless", d, got)
		}
	}
}

func TestDimensionsAlgebraProperties(t *testing.T) {
	vs := []Dimensions{Dimensionless, Length, Speed, Force, Pressure, Base("pixel")}
	for _, a := range vs {
		sq, err := Squared(a)
		if err != nil {
			t.Fatalf("Squared(%v): %v", a, err)
		}
		aa, _ := Times(a, a)
		if !sq.Equal(aa) {
			t.Errorf("Squared(%v) = %v, want %v", a, sq, aa)
		}
		cu, err := Cubed(a)
		if err != nil {
			t.Fatalf("Cubed(%v): %v", a, err)
		}
		asq, _ := Times(a, sq)
		if !cu.Equal(asq) {
			t.Errorf("Cubed(%v) = %v, want %v", a, cu, asq)
		}

		for _, b := range vs {
			ab, _ := Times(a, b)
			ba, _ := Times(b, a)
			if !ab.Equal(ba) {
				t.Errorf("Times not commutative for %v, %v", a, b)
			}
			for _, c := range vs {
				abc1, _ := Times(ab, c)
				bc, _ := Times(b, c)
				abc2, _ := Times(a, bc)
				if !abc1.Equal(abc2) {
					t.Errorf("Times not associative for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestDimensionsOverflow(t *testing.T) {
	foo := MustDimensions(map[string]int{"foo": 4})
	_, err := Times(foo, foo)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("Times({foo:4},{foo:4}) error = %v, want ErrOverflow", err)
	}
	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("error %T is not *OverflowError", err)
	}
	if oe.Key != "foo" || oe.Left != 4 || oe.Right != 4 {
		t.Errorf("OverflowError = %+v, want {foo 4 4}", *oe)
	}

	if _, err := Cubed(MustDimensions(map[string]int{KeyLength: 3})); !errors.Is(err, ErrOverflow) {
		t.Errorf("Cubed(length³) error = %v, want ErrOverflow", err)
	}
	if _, err := NewDimensions(map[string]int{KeyTime: -8}); !errors.Is(err, ErrOverflow) {
		t.Errorf("NewDimensions(time⁻⁸) error = %v, want ErrOverflow", err)
	}
	if _, err := Times(MustDimensions(map[string]int{KeyTime: 7}), Dimensionless); err != nil {
		t.Errorf("Times(time⁷, 1) error = %v, want nil", err)
	}
}

func TestDimensionsPowLargeExponent(t *testing.T) {
	length4 := MustDimensions(map[string]int{KeyLength: 4})
	for _, n := range []int{8, -8, 1 << 62, math.MaxInt64, math.MinInt64} {
		if _, err := Pow(length4, n); !errors.Is(err, ErrOverflow) {
			t.Errorf("Pow(length⁴, %d) error = %v, want ErrOverflow", n, err)
		}
		if _, err := Pow(Length, n); !errors.Is(err, ErrOverflow) {
			t.Errorf("Pow(length, %d) error = %v, want ErrOverflow", n, err)
		}
		got, err := Pow(Dimensionless, n)
		if err != nil || !got.IsDimensionless() {
			t.Errorf("Pow(1, %d) = %v, %v; want dimensionless", n, got, err)
		}
	}
	if got, err := Pow(Length, -7); err != nil || got.Exponent(KeyLength) != -7 {
		t.Errorf("Pow(length, -7) = %v, %v", got, err)
	}
}

func TestNewDimensionsDropsZero(t *testing.T) {
	d, err := NewDimensions(map[string]int{KeyLength: 1, KeyMass: 0})
	if err != nil {
		t.Fatalf("NewDimensions: %v", err)
	}
	if diff := cmp.Diff([]string{KeyLength}, d.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if !d.Equal(Length) {
		t.Errorf("NewDimensions = %v, want %v", d, Length)
	}
	if d.Exponent(KeyMass) != 0 {
		t.Errorf("Exponent(mass) = %d, want 0", d.Exponent(KeyMass))
	}
}

func TestDimensionsString(t *testing.T) {
	tests := []struct {
		d    Dimensions
		want string
	}{
		{Dimensionless, "1"},
		{Length, "length"},
		{Speed, "length·time⁻¹"},
		{Force, "length·mass·time⁻²"},
		{Volume, "length³"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFrequencyEqualsRadioactivityVector(t *testing.T) {
	if !Hertz.Dimensions().Equal(Becquerels.Dimensions()) {
		t.Errorf("Hz %v and Bq %v should share a dimension vector", Hertz.Dimensions(), Becquerels.Dimensions())
	}
}
