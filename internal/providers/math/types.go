package math

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/calcunits/internal/calculator"
	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"github.com/GriffinCanCode/calcunits/internal/types"
	"github.com/GriffinCanCode/calcunits/internal/units"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(code, message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, Code: code}, nil
}

// FailureFrom turns an operation error into a failed result
func FailureFrom(err error) (*types.Result, error) {
	return Failure(ErrorCode(err), err.Error())
}

// ErrorCode maps an operation error to its result code
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, numeric.ErrInvalidInput):
		return types.CodeInvalidInput
	case errors.Is(err, units.ErrUnknownUnit):
		return types.CodeUnknownUnit
	case errors.Is(err, units.ErrIncompatibleCategories):
		return types.CodeIncompatibleCategories
	case errors.Is(err, calculator.ErrDivideByZero):
		return types.CodeDivideByZero
	default:
		return ""
	}
}

// GetParams extracts required params as-is. Values are not coerced here:
// the operations apply the numeric policy themselves.
func GetParams(params map[string]interface{}, keys ...string) ([]interface{}, error) {
	out := make([]interface{}, len(keys))
	for i, key := range keys {
		val, ok := params[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s parameter required", numeric.ErrInvalidInput, key)
		}
		out[i] = val
	}
	return out, nil
}

// OptionalString extracts an optional string param. Absent or null is "";
// any other non-string value is invalid input.
func OptionalString(params map[string]interface{}, key string) (string, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return "", nil
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", numeric.ErrInvalidInput, key, val)
	}
	return s, nil
}
