package units

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultCatalogLookup(t *testing.T) {
	cat := DefaultCatalog()
	tests := []struct {
		symbol string
		name   string
	}{
		{"m", "meters"},
		{"km", "kilometers"},
		{"μm", "micrometers"},
		{"°C", "celsius"},
		{"°F", "fahrenheit"},
		{"Hz", "hertz"},
		{"Bq", "becquerels"},
		{"N", "newtons"},
		{"Ω", "ohms"},
		{"sec", "seconds"},
		{"hr", "hours"},
		{"l", "liters"},
		{"deg", "degrees"},
	}
	for _, tt := range tests {
		u, ok := cat.Lookup(NormalizeSymbol(tt.symbol))
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.symbol)
			continue
		}
		want, _ := cat.Unit(tt.name)
		if !u.Equal(want) {
			t.Errorf("Lookup(%q) = %v, want %s (%v)", tt.symbol, u, tt.name, want)
		}
	}
}

func TestDefaultCatalogDerivedUnits(t *testing.T) {
	tests := []struct {
		name  string
		dim   Dimensions
		scale float64
	}{
		{"newtons", Force, 1},
		{"joules", Energy, 1},
		{"watts", Power, 1},
		{"pascals", Pressure, 1},
		{"volts", Voltage, 1},
		{"ohms", Resistance, 1},
		{"siemens", Conductance, 1},
		{"farads", Capacitance, 1},
		{"henries", Inductance, 1},
		{"webers", MagneticFlux, 1},
		{"teslas", MagneticInduction, 1},
		{"lux", Illuminance, 1},
		{"grays", AbsorbedDose, 1},
		{"coulombs", Charge, 1},
		{"kilowattHours", Energy, 3.6e6},
		{"hectares", Area, 1e4},
		{"liters", Volume, 1e-3},
		{"knots", Speed, 1852.0 / 3600},
		{"miles", Length, 1609.344},
		{"inches", Length, 0.0254},
		{"pounds", Mass, 0.45359237},
		{"days", Time, 86400},
		{"curies", Frequency, 3.7e10},
	}
	cat := DefaultCatalog()
	for _, tt := range tests {
		u, ok := cat.Unit(tt.name)
		if !ok {
			t.Errorf("Unit(%q) not found", tt.name)
			continue
		}
		if !u.Dimensions().Equal(tt.dim) {
			t.Errorf("%s dimensions = %v, want %v", tt.name, u.Dimensions(), tt.dim)
		}
		if !approx(u.Scale(), tt.scale) {
			t.Errorf("%s scale = %.17g, want %.17g", tt.name, u.Scale(), tt.scale)
		}
	}
}

func TestDefaultCatalogTemperatures(t *testing.T) {
	// 0 K = -273.15 °C = -459.67 °F
	zero := Kelvin.Of(0)
	for _, tt := range []struct {
		u    Unit
		want float64
	}{
		{Celsius, -273.15},
		{Fahrenheit, -459.67},
		{Rankine, 0},
	} {
		got, err := zero.In(tt.u)
		if err != nil {
			t.Fatalf("In(%v): %v", tt.u, err)
		}
		if math.Abs(got.Amount()-tt.want) > 1e-9 {
			t.Errorf("0 K in %v = %g, want %g", tt.u, got.Amount(), tt.want)
		}
	}

	c, _ := Fahrenheit.Of(451).In(Celsius)
	if math.Abs(c.Amount()-232.778) > 1e-3 {
		t.Errorf("451 °F = %g °C, want ≈232.778", c.Amount())
	}
}

func TestDefaultCatalogScalars(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want float64
	}{
		{"50 %", 0.5},
		{"5 ‰", 0.005},
		{"25 ‱", 0.0025},
		{"180 °", math.Pi},
	} {
		q := MustParse(tt.in)
		got, err := q.In(Scalar)
		if err != nil {
			t.Fatalf("%s in scalar: %v", tt.in, err)
		}
		if !approx(got.Amount(), tt.want) {
			t.Errorf("%s = %g, want %g", tt.in, got.Amount(), tt.want)
		}
	}
}

func TestDefaultCatalogUnitsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range DefaultCatalog().Units() {
		if seen[u.Symbol()] {
			t.Errorf("symbol %q listed twice", u.Symbol())
		}
		seen[u.Symbol()] = true
	}
	if len(seen) < 100 {
		t.Errorf("catalog has %d units, want at least 100", len(seen))
	}
	if DefaultCatalog().Len() <= len(seen) {
		t.Errorf("Len() = %d should count aliases beyond %d units", DefaultCatalog().Len(), len(seen))
	}
}

func TestBuildDefaultCatalogIsFresh(t *testing.T) {
	c, err := BuildDefaultCatalog()
	if err != nil {
		t.Fatalf("BuildDefaultCatalog: %v", err)
	}
	if c == DefaultCatalog() {
		t.Error("BuildDefaultCatalog returned the shared catalog")
	}
	if c.Len() != DefaultCatalog().Len() {
		t.Errorf("Len() = %d, want %d", c.Len(), DefaultCatalog().Len())
	}
}

func TestCatalogBuilderErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *CatalogBuilder)
		msg   string
	}{
		{
			name: "undefined reference",
			build: func(b *CatalogBuilder) {
				b.Base("meters", "m", Length)
				b.Quotient("metersPerSecond", "meters", "seconds", "m/s")
			},
			msg: `"seconds" referenced before definition`,
		},
		{
			name: "duplicate name",
			build: func(b *CatalogBuilder) {
				b.Base("meters", "m", Length)
				b.Base("meters", "M", Length)
			},
			msg: `duplicate name "meters"`,
		},
		{
			name: "duplicate symbol",
			build: func(b *CatalogBuilder) {
				b.Base("meters", "m", Length)
				b.Base("minutes", "m", Time)
			},
			msg: `reuses symbol "m"`,
		},
		{
			name: "affine anchor",
			build: func(b *CatalogBuilder) {
				b.Base("kelvin", "K", Temperature)
				b.Affine("celsius", "kelvin", 1, -273.15, "°C")
				b.Affine("weird", "celsius", 1, 10, "°W")
			},
			msg: "already has an offset",
		},
		{
			name: "affine composition",
			build: func(b *CatalogBuilder) {
				b.Base("kelvin", "K", Temperature)
				b.Base("seconds", "s", Time)
				b.Affine("celsius", "kelvin", 1, -273.15, "°C")
				b.Quotient("celsiusPerSecond", "celsius", "seconds", "°C/s")
			},
			msg: "cannot be composed",
		},
		{
			name: "unknown prefix",
			build: func(b *CatalogBuilder) {
				b.Base("meters", "m", Length)
				b.Prefixed("xmeters", "meters", "x")
			},
			msg: "unknown SI prefix",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewCatalogBuilder()
			tt.build(b)
			_, err := b.Build()
			if !errors.Is(err, ErrCatalog) {
				t.Fatalf("Build error = %v, want ErrCatalog", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Build error = %q, want it to contain %q", err, tt.msg)
			}
		})
	}
}

func TestCatalogBuilderKeepsFirstError(t *testing.T) {
	b := NewCatalogBuilder()
	b.Scaled("feet", "yards", 1.0/3, "ft")
	b.Base("meters", "m", Length)
	b.Base("meters", "m", Length)
	_, err := b.Build()
	if err == nil || !strings.Contains(err.Error(), `"yards"`) {
		t.Errorf("Build error = %v, want the first (yards) error", err)
	}
}

func TestCatalogNamesOrder(t *testing.T) {
	b := NewCatalogBuilder()
	b.Base("meters", "m", Length)
	b.Prefixed("kilometers", "meters", "k")
	b.Alias("klicks", "kilometers")
	cat, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	names := cat.Names()
	if strings.Join(names, ",") != "meters,kilometers,klicks" {
		t.Errorf("Names() = %v", names)
	}
	if got := len(cat.Units()); got != 2 {
		t.Errorf("len(Units()) = %d, want 2", got)
	}
	u, _ := cat.Unit("klicks")
	if u.Symbol() != "km" {
		t.Errorf("klicks symbol = %q, want km", u.Symbol())
	}
}

func TestCatalogBuilderPrefixes(t *testing.T) {
	b := NewCatalogBuilder()
	b.Base("pixels", "px", Base("pixel"))
	b.Base("dots", "dot", MustDimensions(map[string]int{"pixel": 2}))
	b.Scaled("picas", "pixels", 16, "pc")
	b.SymbolAlias("pica", "picas")
	b.Quotient("pixelsPerDot", "pixels", "dots", "ppd")
	b.RejectPrefixes("pixels")
	b.AcceptPrefixes("picas")
	cat, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for name, want := range map[string]bool{"pixels": false, "picas": true, "pixelsPerDot": true} {
		u, _ := cat.Unit(name)
		if u.AcceptsPrefix() != want {
			t.Errorf("%s AcceptsPrefix() = %v, want %v", name, u.AcceptsPrefix(), want)
		}
	}
	if u, _ := cat.Lookup("pica"); !u.AcceptsPrefix() {
		t.Error("symbol alias pica lost the prefix mark")
	}

	opt := WithCatalog(cat)
	if _, err := ParseUnit("kpx", opt); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("ParseUnit(kpx) error = %v, want ErrUnknownUnit", err)
	}
	u, err := ParseUnit("kpc", opt)
	if err != nil {
		t.Fatalf("ParseUnit(kpc): %v", err)
	}
	if u.Symbol() != "kpc" || u.Scale() != 16000 {
		t.Errorf("kpc = %q scale %g, want kpc scale 16000", u.Symbol(), u.Scale())
	}

	b = NewCatalogBuilder()
	b.AcceptPrefixes("nothing")
	if _, err := b.Build(); !errors.Is(err, ErrCatalog) {
		t.Errorf("AcceptPrefixes(undefined) error = %v, want ErrCatalog", err)
	}
}
