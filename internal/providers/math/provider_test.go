package math_test

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/calcunits/internal/catalog"
	"github.com/GriffinCanCode/calcunits/internal/providers/math"
	"github.com/GriffinCanCode/calcunits/internal/testutil"
	"github.com/GriffinCanCode/calcunits/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMathProvider(t *testing.T) {
	mathProvider := math.NewProvider()
	ctx := context.Background()

	t.Run("Definition", func(t *testing.T) {
		def := mathProvider.Definition()
		assert.Equal(t, "math", def.ID)
		assert.Equal(t, types.CategoryMath, def.Category)

		ids := make([]string, 0, len(def.Tools))
		for _, tool := range def.Tools {
			ids = append(ids, tool.ID)
		}
		assert.ElementsMatch(t, []string{
			"math.add", "math.subtract", "math.multiply", "math.divide", "math.power",
			"math.metrics", "math.convert", "math.units",
		}, ids)
	})

	t.Run("Arithmetic Operations", func(t *testing.T) {
		tests := []struct {
			tool string
			x, y interface{}
			want float64
		}{
			{"math.add", 1.0, 2.0, 3.0},
			{"math.add", 1, 2, 3.0},
			{"math.subtract", 10.0, 3.0, 7.0},
			{"math.multiply", 2.0, 3.5, 7.0},
			{"math.divide", 10.0, 4.0, 2.5},
			{"math.power", 2.0, 3.0, 8.0},
			{"math.power", 4.0, -0.5, 0.5},
		}

		for _, tt := range tests {
			t.Run(tt.tool, func(t *testing.T) {
				result, err := mathProvider.Execute(ctx, tt.tool, map[string]interface{}{
					"x": tt.x,
					"y": tt.y,
				}, nil)
				require.NoError(t, err)
				testutil.AssertDataField(t, result, "result", tt.want)
			})
		}
	})

	t.Run("Add rejects booleans", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.add", map[string]interface{}{
			"x": true,
			"y": 2.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeInvalidInput)
	})

	t.Run("Missing parameter", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.subtract", map[string]interface{}{
			"x": 1.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeInvalidInput)
		assert.Contains(t, *result.Error, "y parameter required")
	})

	t.Run("Nil params", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.add", nil, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeInvalidInput)
	})

	t.Run("Divide by zero", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.divide", map[string]interface{}{
			"x": 1.0,
			"y": 0.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeDivideByZero)
	})

	t.Run("Divide string by zero is invalid input", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.divide", map[string]interface{}{
			"x": "x",
			"y": 0.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeInvalidInput)
	})

	t.Run("Metrics", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.metrics", map[string]interface{}{
			"x": 1.0, "y": 2.0, "z": 3.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, map[string]interface{}{
			"sum": 6.0, "mean": 2.0, "min": 1.0, "max": 3.0, "range": 2.0,
		}, result.Data)
	})

	t.Run("Metrics rejects strings", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.metrics", map[string]interface{}{
			"x": 1.0, "y": "2", "z": 3.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeInvalidInput)
	})

	t.Run("Conversions", func(t *testing.T) {
		t.Run("mph to kph", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.convert", map[string]interface{}{
				"value": 60.0, "from": "mph", "to": "kph",
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 96.56064, result.Data["result"], 1e-9)
			assert.Equal(t, "mph", result.Data["from"])
			assert.Equal(t, "kph", result.Data["to"])
			assert.Equal(t, "speed", result.Data["category"])
		})

		t.Run("canonical codes are reported", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.convert", map[string]interface{}{
				"value": 1, "from": " Gallons ", "to": "litre",
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 3.785411784, result.Data["result"], 1e-12)
			assert.Equal(t, "gal", result.Data["from"])
			assert.Equal(t, "L", result.Data["to"])
		})

		errorCases := []struct {
			name   string
			params map[string]interface{}
			code   string
		}{
			{"incompatible", map[string]interface{}{"value": 1.0, "from": "m", "to": "kg"}, types.CodeIncompatibleCategories},
			{"unknown unit", map[string]interface{}{"value": 1.0, "from": "nope", "to": "m"}, types.CodeUnknownUnit},
			{"non-numeric value", map[string]interface{}{"value": "x", "from": "m", "to": "km"}, types.CodeInvalidInput},
			{"boolean value", map[string]interface{}{"value": false, "from": "m", "to": "km"}, types.CodeInvalidInput},
			{"non-string unit", map[string]interface{}{"value": 1.0, "from": 3.0, "to": "km"}, types.CodeInvalidInput},
			{"missing unit", map[string]interface{}{"value": 1.0, "from": "m"}, types.CodeInvalidInput},
		}
		for _, tc := range errorCases {
			t.Run(tc.name, func(t *testing.T) {
				result, err := mathProvider.Execute(ctx, "math.convert", tc.params, nil)
				require.NoError(t, err)
				testutil.AssertErrorCode(t, result, tc.code)
			})
		}
	})

	t.Run("Units", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.units", map[string]interface{}{}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		cats, ok := result.Data["categories"].([]catalog.CategoryEntry)
		require.True(t, ok)
		assert.Len(t, cats, 7)

		result, err = mathProvider.Execute(ctx, "math.units", map[string]interface{}{"category": "volume"}, nil)
		require.NoError(t, err)
		cats = result.Data["categories"].([]catalog.CategoryEntry)
		require.Len(t, cats, 1)
		assert.Equal(t, "L", cats[0].Base)

		result, err = mathProvider.Execute(ctx, "math.units", map[string]interface{}{"category": "currency"}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeInvalidInput)

		result, err = mathProvider.Execute(ctx, "math.units", map[string]interface{}{"category": nil}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Len(t, result.Data["categories"].([]catalog.CategoryEntry), 7)
	})

	t.Run("Units rejects non-string category", func(t *testing.T) {
		for _, category := range []interface{}{5.0, true, []interface{}{"mass"}} {
			result, err := mathProvider.Execute(ctx, "math.units", map[string]interface{}{"category": category}, nil)
			require.NoError(t, err)
			testutil.AssertErrorCode(t, result, types.CodeInvalidInput)
			assert.Nil(t, result.Data)
		}
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.sqrt", map[string]interface{}{"x": 4.0}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, types.CodeUnknownTool)
	})
}
