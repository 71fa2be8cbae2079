// internal/app/routes_test.go
package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	apppkg "neonsky/internal/app"
	"neonsky/internal/weather"
)

// Service dengan kolaborator nil cukup untuk jalur yang ditolak sebelum I/O.
func newTestRouter(apiKey string) *mux.Router {
	r := mux.NewRouter()
	svc := weather.NewService(nil, nil, nil, nil, 0)
	apppkg.RegisterRoutesWithDeps(r, apppkg.RegisterDeps{Service: svc, APIKey: apiKey})
	return r
}

func TestPublicRoutesHealthy(t *testing.T) {
	r := newTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on /healthz, got %d", rec.Code)
	}
}

func TestWeatherRejectsBlankCity(t *testing.T) {
	r := newTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=%20%20", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank city, got %d", rec.Code)
	}
}

func TestSuggestAlwaysOK(t *testing.T) {
	r := newTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on /api/suggest, got %d", rec.Code)
	}
}

func TestAPIKeyProtection(t *testing.T) {
	r := newTestRouter("sekrit")

	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Berlin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/weather?city=%20", nil)
	req.Header.Set("X-API-Key", "sekrit")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 with key and blank city, got %d", rec.Code)
	}
}
