// Package calculator provides basic arithmetic over validated numeric operands.
//
// Operands are untyped so callers can hand over values decoded from JSON
// tool parameters or CLI arguments directly. Every operand must pass the
// numeric policy (integers and floats, never booleans) before any
// arithmetic happens; failures wrap numeric.ErrInvalidInput.
//
// Operations:
//   - Add, Subtract, Multiply: two operands
//   - SafeDivide: two operands, ErrDivideByZero on a zero divisor
//   - Power: x raised to y with math.Pow semantics
//   - Metrics: sum, mean, min, max and range of three operands
//
// Example Usage:
//
//	sum, err := calculator.Add(2, 3.5)
//	m, err := calculator.Metrics(1, 2, 3) // {Sum:6 Mean:2 Min:1 Max:3 Range:2}
package calculator
