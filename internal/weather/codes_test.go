// internal/weather/codes_test.go
package weather

import "testing"

func TestTranslateCodeFullTable(t *testing.T) {
	tests := []struct {
		code      int
		label     string
		desc      string
	}{
		{0, "Clear", "Clear sky"},
		{1, "Mostly clear", "Mainly clear sky"},
		{2, "Partly cloudy", "Partly cloudy sky"},
		{3, "Overcast", "Overcast sky"},
		{45, "Fog", "Fog"},
		{48, "Fog", "Depositing rime fog"},
		{51, "Drizzle", "Light drizzle"},
		{53, "Drizzle", "Moderate drizzle"},
		{55, "Drizzle", "Dense drizzle"},
		{56, "Freezing drizzle", "Light freezing drizzle"},
		{57, "Freezing drizzle", "Dense freezing drizzle"},
		{61, "Rain", "Slight rain"},
		{63, "Rain", "Moderate rain"},
		{65, "Rain", "Heavy rain"},
		{66, "Freezing rain", "Light freezing rain"},
		{67, "Freezing rain", "Heavy freezing rain"},
		{71, "Snow", "Slight snowfall"},
		{73, "Snow", "Moderate snowfall"},
		{75, "Snow", "Heavy snowfall"},
		{77, "Snow grains", "Snow grains"},
		{80, "Rain showers", "Slight rain showers"},
		{81, "Rain showers", "Moderate rain showers"},
		{82, "Rain showers", "Violent rain showers"},
		{85, "Snow showers", "Slight snow showers"},
		{86, "Snow showers", "Heavy snow showers"},
		{95, "Thunderstorm", "Thunderstorm"},
		{96, "Thunderstorm", "Thunderstorm with slight hail"},
		{99, "Thunderstorm", "Thunderstorm with heavy hail"},
	}

	for _, tt := range tests {
		got := TranslateCode(tt.code)
		if got.Label != tt.label || got.Description != tt.desc {
			t.Errorf("code %d: got (%q, %q), want (%q, %q)", tt.code, got.Label, got.Description, tt.label, tt.desc)
		}
	}
}

func TestTranslateCodeUnknown(t *testing.T) {
	for _, code := range []int{-1, 4, 42, 100, 9999} {
		got := TranslateCode(code)
		if got != unknownCondition {
			t.Errorf("code %d: got %+v, want the fixed unknown pair", code, got)
		}
	}
}
