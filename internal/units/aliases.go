package units

// aliases maps lower-cased spellings to canonical unit codes.
var aliases = map[string]string{
	// length
	"m": "m", "meter": "m", "meters": "m", "metre": "m", "metres": "m",
	"km": "km", "kilometer": "km", "kilometers": "km", "kilometre": "km", "kilometres": "km",
	"mi": "mi", "mile": "mi", "miles": "mi",
	"ft": "ft", "foot": "ft", "feet": "ft",

	// mass
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"g": "g", "gram": "g", "grams": "g",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",

	// temperature
	"c": "C", "°c": "C", "celsius": "C",
	"f": "F", "°f": "F", "fahrenheit": "F",
	"k": "K", "kelvin": "K",

	// time
	"s": "s", "sec": "s", "secs": "s", "second": "s", "seconds": "s",
	"min": "min", "minute": "min", "minutes": "min",
	"h": "h", "hr": "h", "hour": "h", "hours": "h",

	// speed
	"mps": "mps", "m/s": "mps",
	"kph": "kph", "km/h": "kph", "kmh": "kph",
	"mph": "mph",

	// volume (US gallon)
	"l": "L", "liter": "L", "liters": "L", "litre": "L", "litres": "L",
	"ml": "mL", "milliliter": "mL", "milliliters": "mL", "millilitre": "mL", "millilitres": "mL",
	"gal": "gal", "gallon": "gal", "gallons": "gal",

	// area
	"sqm": "sqm", "m^2": "sqm", "square_meter": "sqm", "square_meters": "sqm",
	"sqft": "sqft", "ft^2": "sqft", "square_foot": "sqft", "square_feet": "sqft",
	"acre": "acre", "acres": "acre",
}
