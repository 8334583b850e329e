package units_test

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/gogpu/units"
)

func ExampleParse() {
	q, err := units.Parse("100 °C")
	if err != nil {
		panic(err)
	}
	f, err := q.In(units.Fahrenheit)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	fmt.Printf("%.0f °F\n", f.Amount())
	// Output:
	// 100 °C
	// 212 °F
}

func ExampleParse_compound() {
	q, err := units.Parse("10 kg*m/s^2")
	if err != nil {
		panic(err)
	}
	n, err := q.In(units.Newtons)
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Dimensions())
	fmt.Println(n)
	// Output:
	// length·mass·time⁻²
	// 10 N
}

func ExampleParse_withUnits() {
	_, err := units.Parse("3 ft", units.WithUnits(units.Meters, units.Kilometers))
	fmt.Println(errors.Is(err, units.ErrUnknownUnit))
	fmt.Println(err)
	// Output:
	// true
	// units: unknown unit: "ft"
}

func ExampleUnit_Per() {
	kmh, err := units.Kilometers.Per(units.Hours)
	if err != nil {
		panic(err)
	}
	v, err := kmh.Of(36).In(units.MetersPerSecond)
	if err != nil {
		panic(err)
	}
	fmt.Println(kmh)
	fmt.Printf("%.1f %s\n", v.Amount(), v.Unit())
	// Output:
	// km/h
	// 10.0 m/s
}

func ExampleQuantity_Format() {
	q := units.Meters.Of(10.5)
	fmt.Println(q.Format(language.German))
	fmt.Println(q.Format(language.English))
	// Output:
	// 10,5 m
	// 10.5 m
}

func ExampleAs() {
	f, err := units.As[units.FrequencyKind](units.MustParse("50 Hz"))
	if err != nil {
		panic(err)
	}
	fmt.Println(f.Kind(), f)
	// Output:
	// frequency 50 Hz
}

func ExampleCatalogBuilder() {
	b := units.NewCatalogBuilder()
	b.Base("pixels", "px", units.Base("pixel"))
	b.Prefixed("kilopixels", "pixels", "k")
	cat, err := b.Build()
	if err != nil {
		panic(err)
	}
	q, err := units.Parse("2,5 kpx", units.WithCatalog(cat))
	if err != nil {
		panic(err)
	}
	px, _ := q.In(units.MakeUnit("px", units.Base("pixel")))
	fmt.Println(px)
	// Output:
	// 2500 px
}
