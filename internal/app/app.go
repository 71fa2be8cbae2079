// internal/app/app.go
package app

import (
	"log"

	"github.com/gorilla/mux"

	"neonsky/internal/config"
	"neonsky/internal/geo"
	"neonsky/internal/speech"
	"neonsky/internal/util"
	"neonsky/internal/weather"
)

// App menampung router utama
type App struct {
	Router *mux.Router
}

// New membuat instance App + inject semua kolaborator pipeline.
func New(cfg *config.Config) *App {
	r := mux.NewRouter()

	places := geo.NewClient(cfg.Geo.BaseURL, cfg.Geo.UserAgent, cfg.Geo.RPS, cfg.Geo.Burst)
	forecast := weather.NewOpenMeteoClient(cfg.Forecast.BaseURL)

	// Briefing suara opsional: tanpa API key pipeline tetap jalan penuh,
	// hanya audioData yang absen.
	var synth weather.Synthesizer
	if cfg.Speech.Enabled {
		sc, err := speech.NewClient(cfg.Speech.APIKey, cfg.Speech.APIBase, cfg.Speech.Model, cfg.Speech.Voice)
		if err != nil {
			log.Printf("[WARN] init speech client: %v; voice briefing disabled", err)
		} else {
			synth = sc
		}
	}

	svc := weather.NewService(places, forecast, synth, util.RealClock{}, cfg.Forecast.Days)

	RegisterRoutesWithDeps(r, RegisterDeps{Service: svc, APIKey: cfg.APIKey})

	return &App{Router: r}
}
