// Package utils validates request input before it reaches the registry or
// the converter.
//
// Validation:
//   - Tool params depth and encoded size
//   - Tool ID shape, discovery intent and unit name lengths
//
// All failures wrap numeric.ErrInvalidInput, so handlers report them with
// the invalid_input code.
package utils
