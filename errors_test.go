package units

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
		is   error
	}{
		{&OverflowError{Key: "foo", Left: 4, Right: 4}, "units: overflow in foo when combining 4 and 4", ErrOverflow},
		{&DimensionMismatchError{Op: "plus", Left: Length, Right: Time}, "units: plus: dimension mismatch: length vs time", ErrDimensionMismatch},
		{&UnknownUnitError{Symbol: "ft"}, `units: unknown unit: "ft"`, ErrUnknownUnit},
		{&AffineError{Op: "times", Symbol: "°C", Offset: -273.15}, `units: times: unit "°C" has offset -273.15 and cannot be composed`, ErrAffineComposition},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, tt.is) {
			t.Errorf("%v does not match %v", tt.err, tt.is)
		}
	}
}

func TestUnknownUnitErrorCause(t *testing.T) {
	cause := errors.New("syntax")
	err := &UnknownUnitError{Symbol: "m/", Cause: cause}
	if !errors.Is(err, ErrUnknownUnit) || !errors.Is(err, cause) {
		t.Errorf("%v should match both ErrUnknownUnit and its cause", err)
	}
	if !strings.HasSuffix(err.Error(), ": syntax") {
		t.Errorf("Error() = %q, want cause appended", err.Error())
	}
}

func TestParseErrorMessages(t *testing.T) {
	_, err := Parse("abc")
	if got, want := err.Error(), `units: invalid format: "abc": want <number> <unit>`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	_, err = Parse("1.2.3 m")
	if got, want := err.Error(), `units: invalid number: "1.2.3"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
