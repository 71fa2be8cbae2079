// internal/geo/client.go
// Klien place-lookup (OpenStreetMap Nominatim): geocoding + kandidat nama kota

package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"neonsky/internal/util"
)

// Place adalah satu kandidat hasil lookup.
type Place struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient membuat klien Nominatim. rps/burst membatasi laju request keluar
// sesuai usage policy provider.
func NewClient(baseURL, userAgent string, rps float64, burst int) *Client {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Search menjalankan satu query /search dan mengembalikan kandidat terurut
// sesuai ranking provider.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, util.Transport("place lookup canceled", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, util.Transport("build place lookup request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, util.Transport("place lookup request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.Transport(fmt.Sprintf("place lookup returned status %d", resp.StatusCode), nil)
	}

	// Nominatim mengirim lat/lon sebagai string JSON.
	var raw []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, util.BadData("decode place lookup response", err)
	}

	out := make([]Place, 0, len(raw))
	for _, r := range raw {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, util.BadData(fmt.Sprintf("place latitude %q is not numeric", r.Lat), err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, util.BadData(fmt.Sprintf("place longitude %q is not numeric", r.Lon), err)
		}
		out = append(out, Place{Latitude: lat, Longitude: lon, DisplayName: r.DisplayName})
	}
	return out, nil
}

// Resolve memetakan teks kota bebas ke kandidat terbaik (pertama).
// Tanpa retry; itu urusan pemanggil.
func (c *Client) Resolve(ctx context.Context, cityText string) (Place, error) {
	q := strings.TrimSpace(cityText)
	if q == "" {
		return Place{}, util.BadInput("city is required")
	}

	places, err := c.Search(ctx, q, 1)
	if err != nil {
		return Place{}, err
	}
	if len(places) == 0 {
		return Place{}, util.NotFound(fmt.Sprintf("no place found for %q", q))
	}
	return places[0], nil
}
