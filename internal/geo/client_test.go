// internal/geo/client_test.go
package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"neonsky/internal/util"
)

func newTestClient(url string) *Client {
	// rps tinggi supaya test tidak menunggu limiter
	return NewClient(url, "neonsky-test/1.0", 1000, 10)
}

func TestResolveFirstCandidateWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "München" {
			t.Errorf("q = %q, want München", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
		w.Write([]byte(`[
			{"lat":"48.1371","lon":"11.5754","display_name":"München, Bayern, Deutschland"},
			{"lat":"44.5","lon":"-90.1","display_name":"Munich, Wisconsin, United States"}
		]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	loc, err := c.Resolve(context.Background(), "  München  ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if loc.Latitude != 48.1371 || loc.Longitude != 11.5754 {
		t.Errorf("coords = %v,%v, want 48.1371,11.5754", loc.Latitude, loc.Longitude)
	}
	if loc.DisplayName != "München, Bayern, Deutschland" {
		t.Errorf("display name = %q", loc.DisplayName)
	}
}

func TestResolveBlankInputNoNetworkCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	for _, in := range []string{"", "   "} {
		_, err := c.Resolve(context.Background(), in)
		if util.CodeOf(err) != util.CodeBadInput {
			t.Errorf("input %q: error code = %q, want bad_input", in, util.CodeOf(err))
		}
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("lookup issued %d network calls for blank input, want 0", n)
	}
}

func TestResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Resolve(context.Background(), "Nonexistent City Name Xyz123")
	if util.CodeOf(err) != util.CodeNotFound {
		t.Fatalf("error code = %q (%v), want not_found", util.CodeOf(err), err)
	}
}

func TestSearchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), "Berlin", 5)
	if util.CodeOf(err) != util.CodeTransport {
		t.Fatalf("error code = %q (%v), want transport", util.CodeOf(err), err)
	}
}

func TestSearchBadCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"north-ish","lon":"13.4","display_name":"Somewhere"}]`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), "Somewhere", 5)
	if util.CodeOf(err) != util.CodeBadData {
		t.Fatalf("error code = %q (%v), want bad_data", util.CodeOf(err), err)
	}
}
