package math

import (
	"context"

	"github.com/GriffinCanCode/calcunits/internal/catalog"
	"github.com/GriffinCanCode/calcunits/internal/types"
	"github.com/GriffinCanCode/calcunits/internal/units"
)

// ConversionsOps handles unit conversions
type ConversionsOps struct{}

// GetTools returns conversion tool definitions
func (c *ConversionsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.convert",
			Name:        "Convert Units",
			Description: "Convert a value between units of the same category (length, mass, temperature, time, speed, volume, area)",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Value to convert", Required: true},
				{Name: "from", Type: "string", Description: "Source unit, e.g. mph, °C, ft^2", Required: true},
				{Name: "to", Type: "string", Description: "Target unit, e.g. kph, F, sqm", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.units",
			Name:        "List Units",
			Description: "List supported units and their aliases by category",
			Parameters: []types.Parameter{
				{Name: "category", Type: "string", Description: "Restrict to one category", Required: false},
			},
			Returns: "array",
		},
	}
}

// Convert converts value between two units
func (c *ConversionsOps) Convert(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := GetParams(params, "value", "from", "to")
	if err != nil {
		return FailureFrom(err)
	}

	result, err := units.ConvertAny(vals[0], vals[1], vals[2])
	if err != nil {
		return FailureFrom(err)
	}

	// Both units resolved above, so these lookups cannot fail.
	src, _ := units.Lookup(vals[1].(string))
	dst, _ := units.Lookup(vals[2].(string))

	return Success(map[string]interface{}{
		"result":   result,
		"from":     src.Code,
		"to":       dst.Code,
		"category": string(src.Category),
	})
}

// Units lists the unit catalog
func (c *ConversionsOps) Units(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	category, err := OptionalString(params, "category")
	if err != nil {
		return FailureFrom(err)
	}

	cat, err := catalog.Build(units.Category(category))
	if err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"categories": cat.Categories})
}
