package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/calcunits/internal/types"
)

// Provider implements the calculator and unit converter as tools
type Provider struct {
	arithmetic  *ArithmeticOps
	stats       *StatsOps
	conversions *ConversionsOps
}

// NewProvider creates a math provider
func NewProvider() *Provider {
	return &Provider{
		arithmetic:  &ArithmeticOps{},
		stats:       &StatsOps{},
		conversions: &ConversionsOps{},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.conversions.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Arithmetic, three-value metrics and unit conversions",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"statistics",
			"conversions",
			"units",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	switch toolID {
	// Arithmetic operations
	case "math.add":
		return m.arithmetic.Add(ctx, params, appCtx)
	case "math.subtract":
		return m.arithmetic.Subtract(ctx, params, appCtx)
	case "math.multiply":
		return m.arithmetic.Multiply(ctx, params, appCtx)
	case "math.divide":
		return m.arithmetic.Divide(ctx, params, appCtx)
	case "math.power":
		return m.arithmetic.Power(ctx, params, appCtx)

	// Stats operations
	case "math.metrics":
		return m.stats.Metrics(ctx, params, appCtx)

	// Conversions
	case "math.convert":
		return m.conversions.Convert(ctx, params, appCtx)
	case "math.units":
		return m.conversions.Units(ctx, params, appCtx)

	default:
		return Failure(types.CodeUnknownTool, fmt.Sprintf("unknown tool: %s", toolID))
	}
}
