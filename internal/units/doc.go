// Package units converts scalar values between named units of one
// physical category.
//
// Every category has a base unit; every unit carries a pair of functions
// mapping into and out of that base. A conversion is always two steps:
// source unit to base, then base to target unit. Adding a unit therefore
// needs one function pair, not a formula per existing unit.
//
// Categories and base units:
//   - length: m
//   - mass: kg
//   - temperature: K (affine: Celsius and Fahrenheit carry an offset)
//   - time: s
//   - speed: mps
//   - volume: L (US gallon)
//   - area: sqm
//
// Unit names are case-insensitive and trimmed; both full names and symbols
// ("m/s", "km/h", "ft^2", "°c") are accepted.
//
// Example Usage:
//
//	kph, err := units.Convert(60, "mph", "kph") // 96.56064
//	f, err := units.Convert(0, "C", "F")        // 32
package units
