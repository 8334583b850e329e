package units

import "log/slog"

// ParseOption configures a Parser or a single Parse call.
//
// Example:
//
//	// Default: full catalog, compound expressions allowed
//	q, err := units.Parse("10 km/h")
//
//	// Only accept a fixed set of symbols
//	q, err := units.Parse("5 km", units.WithUnits(units.Meters, units.Kilometers))
type ParseOption func(*parseOptions)

// parseOptions holds the configuration shared by Parser and Parse.
type parseOptions struct {
	registry  Registry
	compound  bool
	cacheSize int
	logger    *slog.Logger
}

// defaultCacheSize bounds the memoized expressions of a Parser.
const defaultCacheSize = 256

// defaultParseOptions returns the default configuration: the built-in
// catalog with compound expression parsing enabled.
func defaultParseOptions() parseOptions {
	return parseOptions{
		registry:  defaultCatalog,
		compound:  true,
		cacheSize: defaultCacheSize,
	}
}

// WithUnits restricts parsing to exactly the given units. Symbols must match
// exactly; compound expressions and SI-prefix synthesis are disabled unless
// re-enabled with WithCompound.
func WithUnits(us ...Unit) ParseOption {
	return func(o *parseOptions) {
		o.registry = UnitList(us)
		o.compound = false
	}
}

// WithUnitMap is WithUnits for a name-keyed set of units. Lookups match the
// units' symbols, not the keys.
func WithUnitMap(m map[string]Unit) ParseOption {
	return func(o *parseOptions) {
		o.registry = UnitMap(m)
		o.compound = false
	}
}

// WithCatalog resolves symbols against c with compound expression parsing
// enabled.
func WithCatalog(c *Catalog) ParseOption {
	return func(o *parseOptions) {
		o.registry = c
		o.compound = true
	}
}

// WithRegistry resolves symbols against an arbitrary registry with compound
// expression parsing enabled.
func WithRegistry(r Registry) ParseOption {
	return func(o *parseOptions) {
		o.registry = r
		o.compound = true
	}
}

// WithCompound toggles compound expression parsing ("km/h", "kg*m/s^2") and
// SI-prefix synthesis for the configured registry.
// Apply it after the registry option.
func WithCompound(enabled bool) ParseOption {
	return func(o *parseOptions) {
		o.compound = enabled
	}
}

// WithCacheSize sets how many resolved expressions a Parser memoizes.
// Zero means unlimited; a negative size disables memoization.
func WithCacheSize(n int) ParseOption {
	return func(o *parseOptions) {
		o.cacheSize = n
	}
}

// WithLogger sets the logger for one parser instead of the package logger.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOptions) {
		o.logger = l
	}
}
