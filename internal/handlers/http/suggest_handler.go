// internal/handlers/http/suggest_handler.go
package http

import (
	"net/http"

	"neonsky/internal/weather"
)

type SuggestDeps struct {
	Service *weather.Service
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// NewSuggestHandler melayani GET /api/suggest?q=...
// Selalu 200; kegagalan saran bersifat soft.
func NewSuggestHandler(deps SuggestDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := deps.Service.Suggest(r.Context(), r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, suggestResponse{Suggestions: names})
	}
}
