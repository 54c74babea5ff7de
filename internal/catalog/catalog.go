// Package catalog describes the unit tables as plain data and encodes
// them as JSON, YAML or TOML.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"github.com/GriffinCanCode/calcunits/internal/units"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format selects an encoding for Encode.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// UnitEntry is one canonical unit and its accepted spellings.
type UnitEntry struct {
	Code    string   `json:"code" yaml:"code" toml:"code"`
	Base    bool     `json:"base" yaml:"base" toml:"base"`
	Aliases []string `json:"aliases" yaml:"aliases" toml:"aliases"`
}

// CategoryEntry groups the units of one category.
type CategoryEntry struct {
	Name  string      `json:"name" yaml:"name" toml:"name"`
	Base  string      `json:"base" yaml:"base" toml:"base"`
	Units []UnitEntry `json:"units" yaml:"units" toml:"units"`
}

// Catalog is the exportable view of the unit tables.
type Catalog struct {
	Categories []CategoryEntry `json:"categories" yaml:"categories" toml:"categories"`
}

// Build returns the catalog for one category, or all of them when
// category is empty.
func Build(category units.Category) (Catalog, error) {
	cats := units.Categories()
	if category != "" {
		if !units.IsCategory(category) {
			return Catalog{}, fmt.Errorf("%w: unknown category %q", numeric.ErrInvalidInput, category)
		}
		cats = []units.Category{category}
	}

	out := Catalog{Categories: make([]CategoryEntry, 0, len(cats))}
	for _, c := range cats {
		entry := CategoryEntry{Name: string(c), Base: units.Base(c)}
		for _, u := range units.UnitsIn(c) {
			entry.Units = append(entry.Units, UnitEntry{
				Code:    u.Code,
				Base:    u.IsBase(),
				Aliases: units.AliasesOf(u.Code),
			})
		}
		out.Categories = append(out.Categories, entry)
	}
	return out, nil
}

// ParseFormat accepts json, yaml/yml and toml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Marshal encodes c in the given format.
func (c Catalog) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sonic.ConfigStd.MarshalIndent(c, "", "  ")
	case FormatYAML:
		return yaml.Marshal(c)
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Encode writes c to w in the given format.
func (c Catalog) Encode(w io.Writer, format Format) error {
	data, err := c.Marshal(format)
	if err != nil {
		return fmt.Errorf("failed to encode catalog as %s: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// Decode parses data produced by Marshal.
func Decode(data []byte, format Format) (Catalog, error) {
	var c Catalog
	var err error
	switch format {
	case FormatJSON:
		err = sonic.ConfigStd.Unmarshal(data, &c)
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	case FormatTOML:
		err = toml.Unmarshal(data, &c)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	return c, err
}
