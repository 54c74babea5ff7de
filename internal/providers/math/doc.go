// Package math exposes the calculator and unit converter as service tools.
//
// This package is organized into modules:
//   - arithmetic: add, subtract, multiply, divide, power
//   - stats: three-value metrics (sum, mean, min, max, range)
//   - conversions: unit conversion and the unit catalog
//
// Parameters arrive as decoded JSON and are handed to the operations
// untouched, so a boolean operand fails exactly like any other
// non-number. Failed results carry a machine-readable Code:
// invalid_input, unknown_unit, incompatible_categories, divide_by_zero
// or unknown_tool.
//
// Example Usage:
//
//	p := math.NewProvider()
//	result, err := p.Execute(ctx, "math.convert", map[string]interface{}{
//	    "value": 60, "from": "mph", "to": "kph",
//	}, nil)
package math
