package units

import "sort"

// Category partitions units into mutually convertible groups.
type Category string

const (
	Length      Category = "length"
	Mass        Category = "mass"
	Temperature Category = "temperature"
	Time        Category = "time"
	Speed       Category = "speed"
	Volume      Category = "volume"
	Area        Category = "area"
)

// Unit is a canonical unit with its conversions to and from the base unit
// of its category.
type Unit struct {
	Code     string
	Category Category
	ToBase   func(float64) float64
	FromBase func(float64) float64
}

// IsBase reports whether u is the base unit of its category.
func (u Unit) IsBase() bool {
	return bases[u.Category] == u.Code
}

var categoryOrder = []Category{Length, Mass, Temperature, Time, Speed, Volume, Area}

var bases = map[Category]string{
	Length:      "m",
	Mass:        "kg",
	Temperature: "K",
	Time:        "s",
	Speed:       "mps",
	Volume:      "L",
	Area:        "sqm",
}

func identity(v float64) float64 { return v }

func scale(factor float64) (func(float64) float64, func(float64) float64) {
	return func(v float64) float64 { return v * factor },
		func(v float64) float64 { return v / factor }
}

func linear(code string, c Category, factor float64) Unit {
	to, from := scale(factor)
	return Unit{Code: code, Category: c, ToBase: to, FromBase: from}
}

func base(code string, c Category) Unit {
	return Unit{Code: code, Category: c, ToBase: identity, FromBase: identity}
}

// definitions lists every canonical unit in display order.
var definitions = []Unit{
	base("m", Length),
	linear("km", Length, 1000.0),
	linear("mi", Length, 1609.344),
	linear("ft", Length, 0.3048),

	base("kg", Mass),
	linear("g", Mass, 0.001),
	linear("lb", Mass, 0.45359237),

	base("K", Temperature),
	{
		Code:     "C",
		Category: Temperature,
		ToBase:   func(v float64) float64 { return v + 273.15 },
		FromBase: func(v float64) float64 { return v - 273.15 },
	},
	{
		Code:     "F",
		Category: Temperature,
		ToBase:   func(v float64) float64 { return (v-32.0)*5.0/9.0 + 273.15 },
		FromBase: func(v float64) float64 { return (v-273.15)*9.0/5.0 + 32.0 },
	},

	base("s", Time),
	linear("min", Time, 60.0),
	linear("h", Time, 3600.0),

	base("mps", Speed),
	linear("kph", Speed, 1000.0/3600.0),
	linear("mph", Speed, 0.44704),

	base("L", Volume),
	linear("mL", Volume, 0.001),
	linear("gal", Volume, 3.785411784),

	base("sqm", Area),
	linear("sqft", Area, 0.09290304),
	linear("acre", Area, 4046.8564224),
}

var table = func() map[string]Unit {
	t := make(map[string]Unit, len(definitions))
	for _, u := range definitions {
		t[u.Code] = u
	}
	return t
}()

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsCategory reports whether c names a known category.
func IsCategory(c Category) bool {
	_, ok := bases[c]
	return ok
}

// Base returns the base unit code of c, or "" for an unknown category.
func Base(c Category) string {
	return bases[c]
}

// UnitsIn returns the units of c in display order.
func UnitsIn(c Category) []Unit {
	var out []Unit
	for _, u := range definitions {
		if u.Category == c {
			out = append(out, u)
		}
	}
	return out
}

// AliasesOf returns every accepted spelling of a canonical code, sorted.
func AliasesOf(code string) []string {
	var out []string
	for alias, canonical := range aliases {
		if canonical == code {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
