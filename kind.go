package units

// Kind names a physical quantity kind at the type level. Kinds sharing a
// dimension vector, such as FrequencyKind and RadioactivityKind, are
// indistinguishable at runtime but cannot be mixed in a Measure.
//
// Implementations are zero-size marker types.
type Kind interface {
	Dimensions() Dimensions
	Name() string
}

// Quantity kinds for the common dimension vectors.
type (
	ScalarKind        struct{}
	AngleKind         struct{}
	SolidAngleKind    struct{}
	LengthKind        struct{}
	MassKind          struct{}
	TimeKind          struct{}
	CurrentKind       struct{}
	TemperatureKind   struct{}
	AmountKind        struct{}
	LuminosityKind    struct{}
	AreaKind          struct{}
	VolumeKind        struct{}
	SpeedKind         struct{}
	AccelerationKind  struct{}
	AngularSpeedKind  struct{}
	FrequencyKind     struct{}
	RadioactivityKind struct{}
	ForceKind         struct{}
	EnergyKind        struct{}
	PowerKind         struct{}
	PressureKind      struct{}
	ChargeKind        struct{}
	VoltageKind       struct{}
	ResistanceKind    struct{}
	IlluminanceKind   struct{}
	AbsorbedDoseKind  struct{}
)

func (ScalarKind) Dimensions() Dimensions        { return Dimensionless }
func (AngleKind) Dimensions() Dimensions         { return Dimensionless }
func (SolidAngleKind) Dimensions() Dimensions    { return Dimensionless }
func (LengthKind) Dimensions() Dimensions        { return Length }
func (MassKind) Dimensions() Dimensions          { return Mass }
func (TimeKind) Dimensions() Dimensions          { return Time }
func (CurrentKind) Dimensions() Dimensions       { return Current }
func (TemperatureKind) Dimensions() Dimensions   { return Temperature }
func (AmountKind) Dimensions() Dimensions        { return AmountOfSubstance }
func (LuminosityKind) Dimensions() Dimensions    { return LuminousIntensity }
func (AreaKind) Dimensions() Dimensions          { return Area }
func (VolumeKind) Dimensions() Dimensions        { return Volume }
func (SpeedKind) Dimensions() Dimensions         { return Speed }
func (AccelerationKind) Dimensions() Dimensions  { return Acceleration }
func (AngularSpeedKind) Dimensions() Dimensions  { return Frequency }
func (FrequencyKind) Dimensions() Dimensions     { return Frequency }
func (RadioactivityKind) Dimensions() Dimensions { return Frequency }
func (ForceKind) Dimensions() Dimensions         { return Force }
func (EnergyKind) Dimensions() Dimensions        { return Energy }
func (PowerKind) Dimensions() Dimensions         { return Power }
func (PressureKind) Dimensions() Dimensions      { return Pressure }
func (ChargeKind) Dimensions() Dimensions        { return Charge }
func (VoltageKind) Dimensions() Dimensions       { return Voltage }
func (ResistanceKind) Dimensions() Dimensions    { return Resistance }
func (IlluminanceKind) Dimensions() Dimensions   { return Illuminance }
func (AbsorbedDoseKind) Dimensions() Dimensions  { return AbsorbedDose }

func (ScalarKind) Name() string        { return "scalar" }
func (AngleKind) Name() string         { return "angle" }
func (SolidAngleKind) Name() string    { return "solid angle" }
func (LengthKind) Name() string        { return "length" }
func (MassKind) Name() string          { return "mass" }
func (TimeKind) Name() string          { return "time" }
func (CurrentKind) Name() string       { return "electric current" }
func (TemperatureKind) Name() string   { return "temperature" }
func (AmountKind) Name() string        { return "amount of substance" }
func (LuminosityKind) Name() string    { return "luminous intensity" }
func (AreaKind) Name() string          { return "area" }
func (VolumeKind) Name() string        { return "volume" }
func (SpeedKind) Name() string         { return "speed" }
func (AccelerationKind) Name() string  { return "acceleration" }
func (AngularSpeedKind) Name() string  { return "angular speed" }
func (FrequencyKind) Name() string     { return "frequency" }
func (RadioactivityKind) Name() string { return "radioactivity" }
func (ForceKind) Name() string         { return "force" }
func (EnergyKind) Name() string        { return "energy" }
func (PowerKind) Name() string         { return "power" }
func (PressureKind) Name() string      { return "pressure" }
func (ChargeKind) Name() string        { return "electric charge" }
func (VoltageKind) Name() string       { return "voltage" }
func (ResistanceKind) Name() string    { return "resistance" }
func (IlluminanceKind) Name() string   { return "illuminance" }
func (AbsorbedDoseKind) Name() string  { return "absorbed dose" }

// Measure is a Quantity tagged with its kind. Measures of the same kind add
// and subtract without error; measures of different kinds do not compile
// together.
//
// The zero Measure has no unit; obtain measures through As or MeasureOf.
type Measure[K Kind] struct {
	q Quantity
}

// As tags q with kind K after checking that q's dimensions match K.
func As[K Kind](q Quantity) (Measure[K], error) {
	var k K
	if !q.unit.dim.Equal(k.Dimensions()) {
		return Measure[K]{}, &DimensionMismatchError{Op: "as " + k.Name(), Left: k.Dimensions(), Right: q.unit.dim}
	}
	return Measure[K]{q: q}, nil
}

// MeasureOf returns v in unit u tagged with kind K.
//
//	d, err := units.MeasureOf[units.LengthKind](units.Kilometers, 5)
func MeasureOf[K Kind](u Unit, v float64) (Measure[K], error) {
	return As[K](u.Of(v))
}

// Quantity returns the untagged quantity.
func (m Measure[K]) Quantity() Quantity { return m.q }

// Amount returns the amount in m's unit.
func (m Measure[K]) Amount() float64 { return m.q.amount }

// Unit returns the unit m is expressed in.
func (m Measure[K]) Unit() Unit { return m.q.unit }

// Kind returns the name of K.
func (m Measure[K]) Kind() string {
	var k K
	return k.Name()
}

// In converts m to u, which must have K's dimensions.
func (m Measure[K]) In(u Unit) (Measure[K], error) {
	q, err := m.q.In(u)
	if err != nil {
		return Measure[K]{}, err
	}
	return Measure[K]{q: q}, nil
}

// Plus returns m + o in m's unit.
func (m Measure[K]) Plus(o Measure[K]) Measure[K] {
	return Measure[K]{q: Quantity{amount: m.q.amount + convert(o.q, m.q.unit), unit: m.q.unit}}
}

// Minus returns m - o in m's unit.
func (m Measure[K]) Minus(o Measure[K]) Measure[K] {
	return Measure[K]{q: Quantity{amount: m.q.amount - convert(o.q, m.q.unit), unit: m.q.unit}}
}

// Mul scales m by a dimensionless factor.
func (m Measure[K]) Mul(f float64) Measure[K] {
	return Measure[K]{q: m.q.Mul(f)}
}

// Compare returns -1, 0 or +1 as m is less than, equal to or greater than o.
func (m Measure[K]) Compare(o Measure[K]) int {
	a, b := m.q.amount, convert(o.q, m.q.unit)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (m Measure[K]) String() string { return m.q.String() }
