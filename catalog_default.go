package units

import (
	"fmt"
	"math"
)

// defaultCatalog is built once during package initialization and never
// modified afterwards.
var defaultCatalog = mustBuildDefaultCatalog()

// DefaultCatalog returns the built-in catalog of SI and common non-SI units.
func DefaultCatalog() *Catalog { return defaultCatalog }

// BuildDefaultCatalog builds a fresh copy of the built-in catalog. Base units
// are defined before every unit derived from them; the builder rejects any
// other order.
func BuildDefaultCatalog() (*Catalog, error) {
	b := NewCatalogBuilder()

	// Base units.
	b.Base("meters", "m", Length)
	b.Base("kilograms", "kg", Mass)
	b.Base("seconds", "s", Time)
	b.Base("amperes", "A", Current)
	b.Base("kelvin", "K", Temperature)
	b.Base("moles", "mol", AmountOfSubstance)
	b.Base("candelas", "cd", LuminousIntensity)
	b.Base("scalar", "", Dimensionless)

	// Length.
	b.Prefixed("kilometers", "meters", "k")
	b.Prefixed("centimeters", "meters", "c")
	b.Prefixed("millimeters", "meters", "m")
	b.Prefixed("micrometers", "meters", "μ")
	b.Prefixed("nanometers", "meters", "n")
	b.Prefixed("picometers", "meters", "p")
	b.Prefixed("femtometers", "meters", "f")
	b.Alias("microns", "micrometers")
	b.Alias("fermi", "femtometers")
	b.Scaled("angstroms", "meters", 1e-10, "Å")
	b.Scaled("yards", "meters", 0.9144, "yd")
	b.Scaled("feet", "yards", 1.0/3, "ft")
	b.Scaled("inches", "feet", 1.0/12, "in")
	b.Scaled("chains", "yards", 22, "ch")
	b.Scaled("furlongs", "chains", 10, "fur")
	b.Scaled("miles", "furlongs", 8, "mi")
	b.Scaled("fathoms", "yards", 2, "ftm")
	b.Scaled("nauticalMiles", "meters", 1852, "NM")
	b.Scaled("astronomicalUnits", "meters", 149597870700, "au")
	b.Scaled("lightYears", "meters", 9460730472580800, "ly")

	// Mass.
	b.Scaled("grams", "kilograms", 1e-3, "g")
	b.Prefixed("milligrams", "grams", "m")
	b.Prefixed("micrograms", "grams", "μ")
	b.Scaled("tonnes", "kilograms", 1000, "t")
	b.Scaled("pounds", "kilograms", 0.45359237, "lb")
	b.Scaled("ounces", "pounds", 1.0/16, "oz")
	b.RejectPrefixes("kilograms")
	b.AcceptPrefixes("grams", "tonnes")

	// Time.
	b.Prefixed("milliseconds", "seconds", "m")
	b.Prefixed("microseconds", "seconds", "μ")
	b.Prefixed("nanoseconds", "seconds", "n")
	b.Scaled("minutes", "seconds", 60, "min")
	b.Scaled("hours", "minutes", 60, "h")
	b.Scaled("days", "hours", 24, "d")
	b.SymbolAlias("sec", "seconds")
	b.SymbolAlias("hr", "hours")

	// Electric current.
	b.Prefixed("milliamperes", "amperes", "m")

	// Temperature. Celsius and Fahrenheit are affine anchors.
	b.Affine("celsius", "kelvin", 1, -273.15, "°C")
	b.Affine("fahrenheit", "kelvin", 5.0/9, -459.67, "°F")
	b.Scaled("rankine", "kelvin", 5.0/9, "°R")

	// Dimensionless ratios.
	b.Scaled("percent", "scalar", 1e-2, "%")
	b.Scaled("permille", "scalar", 1e-3, "‰")
	b.Scaled("permyriad", "scalar", 1e-4, "‱")

	// Angles. Plane and solid angles are dimensionless.
	b.Base("radians", "rad", Dimensionless)
	b.Scaled("degrees", "radians", math.Pi/180, "°")
	b.Scaled("gradians", "radians", math.Pi/200, "gon")
	b.Scaled("turns", "radians", 2*math.Pi, "tr")
	b.Scaled("arcminutes", "degrees", 1.0/60, "′")
	b.Scaled("arcseconds", "arcminutes", 1.0/60, "″")
	b.SymbolAlias("deg", "degrees")
	b.Base("steradians", "sr", Dimensionless)
	b.Scaled("squareDegrees", "steradians", (math.Pi/180)*(math.Pi/180), "deg²")

	// Area and volume.
	b.Power("squareMeters", "meters", 2, "m²")
	b.Power("squareKilometers", "kilometers", 2, "km²")
	b.Power("squareCentimeters", "centimeters", 2, "cm²")
	b.Scaled("hectares", "squareMeters", 1e4, "ha")
	b.Scaled("acres", "squareMeters", 4046.8564224, "ac")
	b.Power("cubicMeters", "meters", 3, "m³")
	b.Power("cubicCentimeters", "centimeters", 3, "cm³")
	b.Scaled("liters", "cubicMeters", 1e-3, "L")
	b.Prefixed("milliliters", "liters", "m")
	b.SymbolAlias("l", "liters")
	b.Scaled("gallons", "liters", 3.785411784, "gal")
	b.Scaled("cups", "milliliters", 236.588, "cup")
	b.Scaled("fluidOunces", "milliliters", 29.5735, "fl oz")
	b.AcceptPrefixes("liters")

	// Kinematics.
	b.Quotient("metersPerSecond", "meters", "seconds", "m/s")
	b.Quotient("kilometersPerHour", "kilometers", "hours", "km/h")
	b.Quotient("milesPerHour", "miles", "hours", "mph")
	b.Quotient("knots", "nauticalMiles", "hours", "kn")
	b.Quotient("feetPerSecond", "feet", "seconds", "fps")
	b.Power("secondsSquared", "seconds", 2, "s²")
	b.Quotient("metersPerSecondSquared", "meters", "secondsSquared", "m/s²")
	b.Quotient("radiansPerSecond", "radians", "seconds", "rad/s")
	b.Quotient("degreesPerSecond", "degrees", "seconds", "°/s")
	b.Quotient("revolutionsPerMinute", "turns", "minutes", "rpm")

	// Frequency and radioactivity share {time: -1}.
	b.Power("hertz", "seconds", -1, "Hz")
	b.Prefixed("kilohertz", "hertz", "k")
	b.Prefixed("megahertz", "hertz", "M")
	b.Prefixed("gigahertz", "hertz", "G")
	b.Power("becquerels", "seconds", -1, "Bq")
	b.Scaled("curies", "becquerels", 3.7e10, "Ci")

	// Mechanics.
	b.Product("kilogramMeters", "kilograms", "meters", "kg·m")
	b.Quotient("newtons", "kilogramMeters", "secondsSquared", "N")
	b.Prefixed("kilonewtons", "newtons", "k")
	b.Scaled("poundsForce", "newtons", 4.4482216152605, "lbf")
	b.Product("joules", "newtons", "meters", "J")
	b.Prefixed("kilojoules", "joules", "k")
	b.Prefixed("megajoules", "joules", "M")
	b.Scaled("calories", "joules", 4.184, "cal")
	b.Scaled("kilocalories", "calories", 1000, "kcal")
	b.Scaled("kilowattHours", "joules", 3.6e6, "kWh")
	b.Scaled("electronvolts", "joules", 1.602176634e-19, "eV")
	b.AcceptPrefixes("electronvolts")
	b.Quotient("watts", "joules", "seconds", "W")
	b.Prefixed("milliwatts", "watts", "m")
	b.Prefixed("kilowatts", "watts", "k")
	b.Prefixed("megawatts", "watts", "M")
	b.Scaled("horsepower", "watts", 745.69987158227022, "hp")
	b.Quotient("pascals", "newtons", "squareMeters", "Pa")
	b.Prefixed("hectopascals", "pascals", "h")
	b.Prefixed("kilopascals", "pascals", "k")
	b.Scaled("bar", "pascals", 1e5, "bar")
	b.Scaled("millibar", "pascals", 100, "mbar")
	b.Scaled("psi", "pascals", 6894.757293168, "psi")
	b.Scaled("atmospheres", "pascals", 101325, "atm")

	// Electromagnetism.
	b.Product("coulombs", "amperes", "seconds", "C")
	b.Quotient("volts", "watts", "amperes", "V")
	b.Prefixed("millivolts", "volts", "m")
	b.Prefixed("kilovolts", "volts", "k")
	b.Quotient("ohms", "volts", "amperes", "Ω")
	b.Prefixed("kiloohms", "ohms", "k")
	b.Prefixed("megaohms", "ohms", "M")
	b.Power("siemens", "ohms", -1, "S")
	b.Quotient("farads", "coulombs", "volts", "F")
	b.Prefixed("microfarads", "farads", "μ")
	b.Prefixed("nanofarads", "farads", "n")
	b.Prefixed("picofarads", "farads", "p")
	b.Product("webers", "volts", "seconds", "Wb")
	b.Quotient("henries", "webers", "amperes", "H")
	b.Quotient("teslas", "webers", "squareMeters", "T")

	// Photometry.
	b.Product("lumens", "candelas", "steradians", "lm")
	b.Quotient("lux", "lumens", "squareMeters", "lx")

	// Dose.
	b.Quotient("grays", "joules", "kilograms", "Gy")
	b.Quotient("sieverts", "joules", "kilograms", "Sv")

	return b.Build()
}

func mustBuildDefaultCatalog() *Catalog {
	c, err := BuildDefaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("units: default catalog: %v", err))
	}
	return c
}

func defaultUnit(name string) Unit {
	u, ok := defaultCatalog.Unit(name)
	if !ok {
		panic("units: default catalog has no unit " + name)
	}
	return u
}

// Frequently used units of the default catalog.
var (
	Scalar  = defaultUnit("scalar")
	Percent = defaultUnit("percent")

	Meters      = defaultUnit("meters")
	Kilometers  = defaultUnit("kilometers")
	Centimeters = defaultUnit("centimeters")
	Millimeters = defaultUnit("millimeters")
	Inches      = defaultUnit("inches")
	Feet        = defaultUnit("feet")
	Yards       = defaultUnit("yards")
	Miles       = defaultUnit("miles")

	Kilograms = defaultUnit("kilograms")
	Grams     = defaultUnit("grams")
	Pounds    = defaultUnit("pounds")

	Seconds      = defaultUnit("seconds")
	Milliseconds = defaultUnit("milliseconds")
	Minutes      = defaultUnit("minutes")
	Hours        = defaultUnit("hours")

	Kelvin     = defaultUnit("kelvin")
	Celsius    = defaultUnit("celsius")
	Fahrenheit = defaultUnit("fahrenheit")
	Rankine    = defaultUnit("rankine")

	Radians = defaultUnit("radians")
	Degrees = defaultUnit("degrees")

	SquareMeters = defaultUnit("squareMeters")
	CubicMeters  = defaultUnit("cubicMeters")
	Liters       = defaultUnit("liters")

	MetersPerSecond        = defaultUnit("metersPerSecond")
	KilometersPerHour      = defaultUnit("kilometersPerHour")
	MetersPerSecondSquared = defaultUnit("metersPerSecondSquared")
	RadiansPerSecond       = defaultUnit("radiansPerSecond")
	DegreesPerSecond       = defaultUnit("degreesPerSecond")

	Hertz      = defaultUnit("hertz")
	Becquerels = defaultUnit("becquerels")

	Newtons = defaultUnit("newtons")
	Joules  = defaultUnit("joules")
	Watts   = defaultUnit("watts")
	Pascals = defaultUnit("pascals")

	Amperes = defaultUnit("amperes")
	Volts   = defaultUnit("volts")
	Ohms    = defaultUnit("ohms")
)
