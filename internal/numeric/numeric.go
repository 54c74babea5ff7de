// Package numeric holds the single validation policy shared by the
// calculator and the unit converter.
//
// A value is numeric iff it is a Go integer or floating-point value.
// Booleans are never numeric, and neither are strings, nil, or
// json.Number. NaN and infinities pass: they are floats.
package numeric

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned whenever an operand fails the numeric policy.
var ErrInvalidInput = errors.New("invalid input")

// IsNumber reports whether v is an integer or float (never a bool).
func IsNumber(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// Float converts v to float64 or returns an error wrapping ErrInvalidInput.
func Float(v any) (float64, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T) is not a number", ErrInvalidInput, v, v)
	}
	return f, nil
}

// Floats validates every value and returns them in order. The first
// offending operand is reported.
func Floats(vals ...any) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: all inputs must be numbers (int or float), argument %d is %T", ErrInvalidInput, i+1, v)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		// bool lands here on purpose
		return 0, false
	}
}
