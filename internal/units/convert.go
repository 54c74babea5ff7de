package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrUnknownUnit            = errors.New("unknown unit")
	ErrIncompatibleCategories = errors.New("incompatible categories")
)

// normalize trims and lower-cases a unit name. A Caser is stateful, so a
// fresh one is built per call.
func normalize(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// Resolve maps a free-form unit name to its canonical code.
func Resolve(name string) (string, error) {
	code, ok := aliases[normalize(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownUnit, name)
	}
	return code, nil
}

// Lookup resolves name and returns its unit definition.
func Lookup(name string) (Unit, error) {
	code, err := Resolve(name)
	if err != nil {
		return Unit{}, err
	}
	u, ok := table[code]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
	}
	return u, nil
}

// Convert converts value from one unit to another of the same category.
// The value is validated before either unit is resolved.
func Convert(value any, from, to string) (float64, error) {
	return ConvertAny(value, from, to)
}

// ConvertAny is Convert for untyped unit arguments, as they arrive from
// decoded JSON. A unit that is not a string is invalid input.
func ConvertAny(value, from, to any) (float64, error) {
	v, err := numeric.Float(value)
	if err != nil {
		return 0, fmt.Errorf("value must be a number: %w", err)
	}

	src, err := lookupAny(from)
	if err != nil {
		return 0, err
	}
	dst, err := lookupAny(to)
	if err != nil {
		return 0, err
	}

	if src.Category != dst.Category {
		return 0, fmt.Errorf("%w: %v (%s) -> %v (%s)", ErrIncompatibleCategories, from, src.Category, to, dst.Category)
	}

	return dst.FromBase(src.ToBase(v)), nil
}

func lookupAny(unit any) (Unit, error) {
	name, ok := unit.(string)
	if !ok {
		return Unit{}, fmt.Errorf("%w: unit must be a string, got %T", numeric.ErrInvalidInput, unit)
	}
	return Lookup(name)
}
