// internal/handlers/http/weather_handler.go
package http

import (
	"encoding/json"
	"net/http"

	"neonsky/internal/util"
	"neonsky/internal/weather"
)

type WeatherDeps struct {
	Service *weather.Service
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// NewWeatherHandler melayani GET /api/weather?city=...
func NewWeatherHandler(deps WeatherDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := deps.Service.Lookup(r.Context(), r.URL.Query().Get("city"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch util.CodeOf(err) {
	case util.CodeBadInput:
		status = http.StatusBadRequest
	case util.CodeNotFound:
		status = http.StatusNotFound
	case util.CodeTransport, util.CodeBadData:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Status: "error", Error: err.Error()})
}
