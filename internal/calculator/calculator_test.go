package calculator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicOperations(t *testing.T) {
	tests := []struct {
		name string
		fn   func(x, y any) (float64, error)
		x, y any
		want float64
	}{
		{"add ints", Add, 2, 3, 5},
		{"add mixed", Add, 2, 0.5, 2.5},
		{"subtract", Subtract, 10, 3, 7},
		{"subtract negative result", Subtract, 3, 10.5, -7.5},
		{"multiply", Multiply, 4, 2.5, 10},
		{"multiply by zero", Multiply, int64(9), 0, 0},
		{"divide", SafeDivide, 10, 4, 2.5},
		{"divide ints is true division", SafeDivide, 7, 2, 3.5},
		{"power", Power, 2, 3, 8},
		{"power negative exponent", Power, 2, -2, 0.25},
		{"power fractional exponent", Power, 9, 0.5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestRejectsNonNumbers(t *testing.T) {
	ops := map[string]func(x, y any) (float64, error){
		"add":      Add,
		"subtract": Subtract,
		"multiply": Multiply,
		"divide":   SafeDivide,
		"power":    Power,
	}
	bad := []struct {
		name string
		x, y any
	}{
		{"bool first", true, 2},
		{"bool second", 2, false},
		{"string", "1", 2},
		{"nil", nil, 2},
		{"json number", json.Number("3"), 1},
	}

	for opName, op := range ops {
		for _, b := range bad {
			t.Run(opName+"/"+b.name, func(t *testing.T) {
				_, err := op(b.x, b.y)
				assert.ErrorIs(t, err, numeric.ErrInvalidInput)
			})
		}
	}
}

func TestSafeDivideByZero(t *testing.T) {
	t.Run("zero divisor", func(t *testing.T) {
		_, err := SafeDivide(1, 0)
		assert.ErrorIs(t, err, ErrDivideByZero)
		assert.NotErrorIs(t, err, numeric.ErrInvalidInput)
	})

	t.Run("negative zero divisor", func(t *testing.T) {
		_, err := SafeDivide(1.0, math.Copysign(0, -1))
		assert.ErrorIs(t, err, ErrDivideByZero)
	})

	t.Run("type check precedes zero check", func(t *testing.T) {
		_, err := SafeDivide("x", 0)
		assert.ErrorIs(t, err, numeric.ErrInvalidInput)
		assert.NotErrorIs(t, err, ErrDivideByZero)
	})

	t.Run("bool divisor is invalid input", func(t *testing.T) {
		_, err := SafeDivide(1, false)
		assert.ErrorIs(t, err, numeric.ErrInvalidInput)
	})
}

func TestMetrics(t *testing.T) {
	m, err := Metrics(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Summary{Sum: 6, Mean: 2, Min: 1, Max: 3, Range: 2}, m)
	assert.Equal(t, map[string]float64{"sum": 6, "mean": 2, "min": 1, "max": 3, "range": 2}, m.Map())

	t.Run("true division for integers", func(t *testing.T) {
		m, err := Metrics(1, 1, 2)
		require.NoError(t, err)
		assert.InDelta(t, 4.0/3.0, m.Mean, 1e-15)
	})

	t.Run("unordered and negative", func(t *testing.T) {
		m, err := Metrics(5.5, -2, 0)
		require.NoError(t, err)
		assert.Equal(t, -2.0, m.Min)
		assert.Equal(t, 5.5, m.Max)
		assert.Equal(t, 7.5, m.Range)
	})

	t.Run("rejects booleans", func(t *testing.T) {
		_, err := Metrics(1, true, 3)
		assert.ErrorIs(t, err, numeric.ErrInvalidInput)
	})

	t.Run("json keys", func(t *testing.T) {
		m, err := Metrics(1, 2, 3)
		require.NoError(t, err)
		raw, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"sum":6,"mean":2,"min":1,"max":3,"range":2}`, string(raw))
	})
}

func TestAlgebraicProperties(t *testing.T) {
	samples := []float64{-1e6, -3.25, -1, 0, 0.5, 1, 2, 7.75, 1e6}

	for _, x := range samples {
		for _, y := range samples {
			sum, err := Add(x, y)
			require.NoError(t, err)
			diff, err := Subtract(x, y)
			require.NoError(t, err)
			assert.InDelta(t, 2*y, sum-diff, 1e-9, "add-subtract for %v, %v", x, y)

			xy, err := Multiply(x, y)
			require.NoError(t, err)
			yx, err := Multiply(y, x)
			require.NoError(t, err)
			assert.Equal(t, xy, yx, "commutativity for %v, %v", x, y)

			for _, z := range samples {
				m, err := Metrics(x, y, z)
				require.NoError(t, err)
				assert.Equal(t, m.Max-m.Min, m.Range)
				assert.InDelta(t, m.Sum, m.Mean*3, 1e-6)
			}
		}
	}
}
