// Package expr tokenizes and parses unit expressions such as "km/h",
// "kg*m/s^2", "m²" or "1/min" into a numerator/denominator list of
// symbol factors.
//
// The package knows nothing about units: resolving a symbol into a concrete
// unit (registry lookup, SI-prefix decomposition) is done by the caller.
package expr
