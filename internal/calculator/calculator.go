package calculator

import (
	"errors"
	gomath "math"

	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"gonum.org/v1/gonum/floats"
)

// ErrDivideByZero is returned by SafeDivide for a zero divisor.
var ErrDivideByZero = errors.New("cannot divide by zero")

// Summary is the fixed-shape metrics record of three numbers.
type Summary struct {
	Sum   float64 `json:"sum"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Range float64 `json:"range"`
}

// Map returns the record keyed by sum, mean, min, max and range.
func (m Summary) Map() map[string]float64 {
	return map[string]float64{
		"sum":   m.Sum,
		"mean":  m.Mean,
		"min":   m.Min,
		"max":   m.Max,
		"range": m.Range,
	}
}

// Add returns x + y.
func Add(x, y any) (float64, error) {
	a, b, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

// Subtract returns x - y.
func Subtract(x, y any) (float64, error) {
	a, b, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// Multiply returns x * y.
func Multiply(x, y any) (float64, error) {
	a, b, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	return a * b, nil
}

// SafeDivide returns x / y. Operand validation runs before the zero check,
// so a non-numeric divisor is reported as invalid input.
func SafeDivide(x, y any) (float64, error) {
	a, b, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Power returns x raised to y.
func Power(x, y any) (float64, error) {
	a, b, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	return gomath.Pow(a, b), nil
}

// Metrics summarises three numbers. Mean is always true division.
func Metrics(x, y, z any) (Summary, error) {
	vals, err := numeric.Floats(x, y, z)
	if err != nil {
		return Summary{}, err
	}

	sum := vals[0] + vals[1] + vals[2]
	lo := floats.Min(vals)
	hi := floats.Max(vals)

	return Summary{
		Sum:   sum,
		Mean:  sum / 3,
		Min:   lo,
		Max:   hi,
		Range: hi - lo,
	}, nil
}

func pair(x, y any) (float64, float64, error) {
	vals, err := numeric.Floats(x, y)
	if err != nil {
		return 0, 0, err
	}
	return vals[0], vals[1], nil
}
