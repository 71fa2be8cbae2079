// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	AppName string
	AppEnv  string
	AppPort string
	APIKey  string // shared key opsional untuk /api

	Geo struct {
		BaseURL   string
		UserAgent string
		RPS       float64
		Burst     int
	}

	Forecast struct {
		BaseURL string
		Days    int
	}

	Speech struct {
		Enabled bool
		APIKey  string
		APIBase string
		Model   string
		Voice   string
	}
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "neonsky-api")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.APIKey = getEnv("API_KEY", "")

	// Place lookup (Nominatim). Usage policy mereka: max 1 request/detik.
	c.Geo.BaseURL = getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	c.Geo.UserAgent = getEnv("GEOCODER_USER_AGENT", c.AppName+"/1.0")
	c.Geo.RPS = 1.0
	c.Geo.Burst = getEnvInt("GEOCODER_BURST", 1)

	// Forecast (Open-Meteo)
	c.Forecast.BaseURL = getEnv("FORECAST_BASE_URL", "https://api.open-meteo.com")
	c.Forecast.Days = getEnvInt("FORECAST_DAYS", 5)

	// Briefing suara (OpenAI TTS)
	c.Speech.APIKey = getEnv("OPENAI_API_KEY", "")
	c.Speech.APIBase = getEnv("OPENAI_API_BASE", "")
	c.Speech.Model = getEnv("OPENAI_TTS_MODEL", "tts-1")
	c.Speech.Voice = getEnv("OPENAI_TTS_VOICE", "alloy")
	c.Speech.Enabled = c.Speech.APIKey != ""

	if !c.Speech.Enabled {
		log.Println("[WARN] OPENAI_API_KEY is not set, voice briefing will be skipped")
	}

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}
