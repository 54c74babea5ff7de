package math

import (
	"context"

	"github.com/GriffinCanCode/calcunits/internal/calculator"
	"github.com/GriffinCanCode/calcunits/internal/types"
)

// ArithmeticOps handles basic arithmetic operations
type ArithmeticOps struct{}

func pairParams() []types.Parameter {
	return []types.Parameter{
		{Name: "x", Type: "number", Description: "First operand", Required: true},
		{Name: "y", Type: "number", Description: "Second operand", Required: true},
	}
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.add",
			Name:        "Add",
			Description: "Add two numbers (x + y)",
			Parameters:  pairParams(),
			Returns:     "number",
		},
		{
			ID:          "math.subtract",
			Name:        "Subtract",
			Description: "Subtract y from x (x - y)",
			Parameters:  pairParams(),
			Returns:     "number",
		},
		{
			ID:          "math.multiply",
			Name:        "Multiply",
			Description: "Multiply two numbers (x * y)",
			Parameters:  pairParams(),
			Returns:     "number",
		},
		{
			ID:          "math.divide",
			Name:        "Divide",
			Description: "Divide x by y, failing on a zero divisor",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Dividend", Required: true},
				{Name: "y", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise x to the power of y (x^y)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Base", Required: true},
				{Name: "y", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
	}
}

type binaryOp func(x, y any) (float64, error)

func (a *ArithmeticOps) run(params map[string]interface{}, op binaryOp) (*types.Result, error) {
	vals, err := GetParams(params, "x", "y")
	if err != nil {
		return FailureFrom(err)
	}
	result, err := op(vals[0], vals[1])
	if err != nil {
		return FailureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// Add adds x and y
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.run(params, calculator.Add)
}

// Subtract subtracts y from x
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.run(params, calculator.Subtract)
}

// Multiply multiplies x and y
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.run(params, calculator.Multiply)
}

// Divide divides x by y
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.run(params, calculator.SafeDivide)
}

// Power raises x to y
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.run(params, calculator.Power)
}
