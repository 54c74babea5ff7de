package catalog

import (
	"bytes"
	"testing"

	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"github.com/GriffinCanCode/calcunits/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAll(t *testing.T) {
	c, err := Build("")
	require.NoError(t, err)
	require.Len(t, c.Categories, 7)

	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"length", "mass", "temperature", "time", "speed", "volume", "area"}, names)
}

func TestBuildOne(t *testing.T) {
	c, err := Build(units.Temperature)
	require.NoError(t, err)
	require.Len(t, c.Categories, 1)

	temp := c.Categories[0]
	assert.Equal(t, "K", temp.Base)
	require.Len(t, temp.Units, 3)
	assert.Equal(t, UnitEntry{Code: "K", Base: true, Aliases: []string{"k", "kelvin"}}, temp.Units[0])
	assert.Equal(t, "C", temp.Units[1].Code)
	assert.Contains(t, temp.Units[1].Aliases, "°c")
	assert.False(t, temp.Units[1].Base)
}

func TestBuildUnknownCategory(t *testing.T) {
	_, err := Build("currency")
	assert.ErrorIs(t, err, numeric.ErrInvalidInput)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	c, err := Build(units.Speed)
	require.NoError(t, err)

	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, f))
			assert.Contains(t, buf.String(), "km/h")

			back, err := Decode(buf.Bytes(), f)
			require.NoError(t, err)
			assert.Equal(t, c, back)
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	c, err := Build(units.Area)
	require.NoError(t, err)
	assert.Error(t, c.Encode(&bytes.Buffer{}, "xml"))
}
