// internal/weather/codes.go
// Pemetaan kode cuaca WMO (skema Open-Meteo) ke label + deskripsi

package weather

// Condition adalah pasangan label singkat dan deskripsi untuk satu kode WMO.
type Condition struct {
	Label       string
	Description string
}

var unknownCondition = Condition{Label: "Unknown", Description: "Indeterminate conditions"}

var wmoConditions = map[int]Condition{
	0:  {"Clear", "Clear sky"},
	1:  {"Mostly clear", "Mainly clear sky"},
	2:  {"Partly cloudy", "Partly cloudy sky"},
	3:  {"Overcast", "Overcast sky"},
	45: {"Fog", "Fog"},
	48: {"Fog", "Depositing rime fog"},
	51: {"Drizzle", "Light drizzle"},
	53: {"Drizzle", "Moderate drizzle"},
	55: {"Drizzle", "Dense drizzle"},
	56: {"Freezing drizzle", "Light freezing drizzle"},
	57: {"Freezing drizzle", "Dense freezing drizzle"},
	61: {"Rain", "Slight rain"},
	63: {"Rain", "Moderate rain"},
	65: {"Rain", "Heavy rain"},
	66: {"Freezing rain", "Light freezing rain"},
	67: {"Freezing rain", "Heavy freezing rain"},
	71: {"Snow", "Slight snowfall"},
	73: {"Snow", "Moderate snowfall"},
	75: {"Snow", "Heavy snowfall"},
	77: {"Snow grains", "Snow grains"},
	80: {"Rain showers", "Slight rain showers"},
	81: {"Rain showers", "Moderate rain showers"},
	82: {"Rain showers", "Violent rain showers"},
	85: {"Snow showers", "Slight snow showers"},
	86: {"Snow showers", "Heavy snow showers"},
	95: {"Thunderstorm", "Thunderstorm"},
	96: {"Thunderstorm", "Thunderstorm with slight hail"},
	99: {"Thunderstorm", "Thunderstorm with heavy hail"},
}

// TranslateCode total: kode di luar tabel jatuh ke pasangan "Unknown",
// tidak pernah error.
func TranslateCode(code int) Condition {
	if c, ok := wmoConditions[code]; ok {
		return c
	}
	return unknownCondition
}
