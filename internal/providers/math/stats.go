package math

import (
	"context"

	"github.com/GriffinCanCode/calcunits/internal/calculator"
	"github.com/GriffinCanCode/calcunits/internal/types"
)

// StatsOps handles descriptive statistics
type StatsOps struct{}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.metrics",
			Name:        "Metrics",
			Description: "Sum, mean, min, max and range of three numbers",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "First value", Required: true},
				{Name: "y", Type: "number", Description: "Second value", Required: true},
				{Name: "z", Type: "number", Description: "Third value", Required: true},
			},
			Returns: "object",
		},
	}
}

// Metrics summarises x, y and z
func (s *StatsOps) Metrics(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := GetParams(params, "x", "y", "z")
	if err != nil {
		return FailureFrom(err)
	}

	m, err := calculator.Metrics(vals[0], vals[1], vals[2])
	if err != nil {
		return FailureFrom(err)
	}

	data := make(map[string]interface{}, 5)
	for k, v := range m.Map() {
		data[k] = v
	}
	return Success(data)
}
