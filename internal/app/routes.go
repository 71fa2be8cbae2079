// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "neonsky/internal/handlers/http"
	"neonsky/internal/middleware"
	"neonsky/internal/weather"
)

type RegisterDeps struct {
	Service *weather.Service
	APIKey  string
}

// RegisterRoutesWithDeps menambahkan route HTTP.
func RegisterRoutesWithDeps(r *mux.Router, deps RegisterDeps) {
	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.HealthHandler).Methods(http.MethodGet)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.APIKey(deps.APIKey))

	api.HandleFunc("/weather", hh.NewWeatherHandler(hh.WeatherDeps{Service: deps.Service})).
		Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/suggest", hh.NewSuggestHandler(hh.SuggestDeps{Service: deps.Service})).
		Methods(http.MethodGet, http.MethodOptions)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)
}
