package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/calcunits/internal/numeric"
)

// Request size limits
const (
	MaxJSONSize    = 1 * 1024 * 1024 // 1MB - maximum request body, see middleware.BodyLimit
	MaxParamsSize  = 64 * 1024       // 64KB - tool params
	MaxParamsDepth = 8
	MaxIntentSize  = 1024
	MaxIDLength    = 128
	MaxUnitLength  = 64
)

// JSONSizeValidator validates JSON size limits
type JSONSizeValidator struct {
	maxSize int
}

// NewJSONSizeValidator creates a new validator with the specified max size
func NewJSONSizeValidator(maxSize int) *JSONSizeValidator {
	return &JSONSizeValidator{maxSize: maxSize}
}

// ValidateSize checks if the data size is within limits
func (v *JSONSizeValidator) ValidateSize(data []byte) error {
	if len(data) > v.maxSize {
		return fmt.Errorf("%w: JSON size %d bytes exceeds maximum %d bytes", numeric.ErrInvalidInput, len(data), v.maxSize)
	}
	return nil
}

// ValidateJSONDepth checks if JSON nesting depth is within limits
func ValidateJSONDepth(data interface{}, maxDepth int) error {
	return checkDepth(data, 0, maxDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("%w: JSON nesting depth %d exceeds maximum %d", numeric.ErrInvalidInput, currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateParams bounds the depth and encoded size of tool params
func ValidateParams(params map[string]interface{}) error {
	if err := ValidateJSONDepth(params, MaxParamsDepth); err != nil {
		return fmt.Errorf("params: %w", err)
	}

	data, err := sonic.Marshal(params)
	if err != nil {
		return fmt.Errorf("%w: params not encodable: %v", numeric.ErrInvalidInput, err)
	}
	if err := NewJSONSizeValidator(MaxParamsSize).ValidateSize(data); err != nil {
		return fmt.Errorf("params: %w", err)
	}
	return nil
}

// ValidateToolID checks a "<service>.<tool>" identifier's shape.
// Whether the tool exists is the registry's call.
func ValidateToolID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: tool_id is required", numeric.ErrInvalidInput)
	}
	if len(id) > MaxIDLength {
		return fmt.Errorf("%w: tool_id exceeds %d characters", numeric.ErrInvalidInput, MaxIDLength)
	}
	for _, r := range id {
		if !isIDRune(r) {
			return fmt.Errorf("%w: tool_id contains invalid character %q", numeric.ErrInvalidInput, r)
		}
	}
	return nil
}

func isIDRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r == '.' || r == '_' || r == '-'
}

// ValidateIntent checks a discovery query
func ValidateIntent(intent string) error {
	if intent == "" {
		return fmt.Errorf("%w: intent is required", numeric.ErrInvalidInput)
	}
	if len(intent) > MaxIntentSize {
		return fmt.Errorf("%w: intent exceeds %d bytes", numeric.ErrInvalidInput, MaxIntentSize)
	}
	return nil
}

// ValidateUnitName checks a unit query parameter. An empty name is left to
// the converter, which reports it as an unknown unit.
func ValidateUnitName(name, field string) error {
	if utf8.RuneCountInString(name) > MaxUnitLength {
		return fmt.Errorf("%w: %s exceeds %d characters", numeric.ErrInvalidInput, field, MaxUnitLength)
	}
	return nil
}
