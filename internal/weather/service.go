// internal/weather/service.go
// Aggregator: geocode -> fetch -> translate -> (briefing) -> satu hasil

package weather

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"neonsky/internal/geo"
	"neonsky/internal/speech"
	"neonsky/internal/util"
)

// Atribusi tetap untuk sumber data yang dipakai.
const (
	sourceForecast = "Open-Meteo"
	sourceGeocoder = "OpenStreetMap Nominatim"
)

const (
	defaultForecastDays = 5
	maxSuggestions      = 5
)

type CurrentConditions struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   string  `json:"windSpeed"`
	LastUpdated string  `json:"lastUpdated"`
}

type ForecastDay struct {
	Date      string `json:"date"`
	DayName   string `json:"dayName"`
	TempHigh  int    `json:"tempHigh"`
	TempLow   int    `json:"tempLow"`
	Condition string `json:"condition"`
}

// Result adalah satu-satunya objek yang dikembalikan ke lapisan view.
// AudioData kosong berarti briefing tidak diminta atau gagal diam-diam.
type Result struct {
	Current   CurrentConditions `json:"current"`
	Forecast  []ForecastDay     `json:"forecast"`
	Sources   []string          `json:"sources"`
	AudioData string            `json:"audioData,omitempty"`
}

type PlaceLookup interface {
	Resolve(ctx context.Context, cityText string) (geo.Place, error)
	Search(ctx context.Context, query string, limit int) ([]geo.Place, error)
}

type ForecastFetcher interface {
	Fetch(ctx context.Context, lat, lon float64, days int) (*Forecast, error)
}

// Synthesizer adalah tahap enrichment opsional; kegagalannya tidak pernah
// sampai ke pemanggil.
type Synthesizer interface {
	Synthesize(ctx context.Context, script string) (string, error)
}

type Service struct {
	places   PlaceLookup
	forecast ForecastFetcher
	speech   Synthesizer // nil bila briefing dimatikan
	clock    util.Clock
	days     int
}

func NewService(places PlaceLookup, forecast ForecastFetcher, synth Synthesizer, clock util.Clock, days int) *Service {
	if clock == nil {
		clock = util.RealClock{}
	}
	if days <= 0 {
		days = defaultForecastDays
	}
	return &Service{
		places:   places,
		forecast: forecast,
		speech:   synth,
		clock:    clock,
		days:     days,
	}
}

// Lookup menjalankan satu pipeline penuh untuk teks kota bebas.
// Error geocoder/fetcher diteruskan apa adanya; tidak ada hasil parsial.
func (s *Service) Lookup(ctx context.Context, cityText string) (*Result, error) {
	q := strings.TrimSpace(cityText)
	if q == "" {
		return nil, util.BadInput("city is required")
	}

	loc, err := s.places.Resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	fc, err := s.forecast.Fetch(ctx, loc.Latitude, loc.Longitude, s.days)
	if err != nil {
		return nil, err
	}

	cond := TranslateCode(int(fc.Current.WeatherCode))
	current := CurrentConditions{
		City:        shortenDisplayName(loc.DisplayName),
		Temperature: float64(fc.Current.Temperature),
		Condition:   cond.Label,
		Description: cond.Description,
		Humidity:    int(fc.Current.Humidity),
		WindSpeed:   fmt.Sprintf("%.0f km/h", float64(fc.Current.WindSpeed)),
		LastUpdated: s.lastUpdated(fc.Current.Time),
	}

	days := make([]ForecastDay, 0, len(fc.Daily.Time))
	for i, date := range fc.Daily.Time {
		if i >= len(fc.Daily.WeatherCode) || i >= len(fc.Daily.TempMax) || i >= len(fc.Daily.TempMin) {
			break // seri provider tidak sejajar; pakai prefiks yang lengkap
		}
		dc := TranslateCode(int(fc.Daily.WeatherCode[i]))
		days = append(days, ForecastDay{
			Date:      date,
			DayName:   dayName(date),
			TempHigh:  int(math.Round(float64(fc.Daily.TempMax[i]))),
			TempLow:   int(math.Round(float64(fc.Daily.TempMin[i]))),
			Condition: dc.Label,
		})
	}

	res := &Result{
		Current:  current,
		Forecast: days,
		Sources:  []string{sourceForecast, sourceGeocoder},
	}

	if s.speech != nil {
		script := speech.BriefingScript(current.City, current.Temperature, current.Condition, current.Description)
		audio, err := s.speech.Synthesize(ctx, script)
		if err != nil {
			log.Printf("[WARN] voice briefing failed, continuing without audio: %v", err)
		} else {
			res.AudioData = audio
		}
	}

	return res, nil
}

// Suggest tidak pernah gagal: input kosong, error transport, atau nol match
// semuanya menghasilkan list kosong.
func (s *Service) Suggest(ctx context.Context, partial string) []string {
	q := strings.TrimSpace(partial)
	if q == "" {
		return []string{}
	}

	// Hanya top-5 kandidat provider yang dipakai; dedup bisa menyisakan
	// kurang dari 5 slot dan itu tidak apa-apa.
	places, err := s.places.Search(ctx, q, maxSuggestions)
	if err != nil {
		log.Printf("[WARN] suggestion lookup failed: %v", err)
		return []string{}
	}

	seen := make(map[string]struct{}, len(places))
	out := make([]string, 0, maxSuggestions)
	for _, p := range places {
		name := shortenDisplayName(p.DisplayName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// shortenDisplayName memotong display name panjang Nominatim ke maksimal
// dua segmen pertama.
func shortenDisplayName(name string) string {
	parts := strings.SplitN(name, ",", 3)
	if len(parts) < 2 {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(parts[0]) + ", " + strings.TrimSpace(parts[1])
}

func dayName(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// lastUpdated memakai timestamp blok current provider (sudah dalam zona
// lokal lewat timezone=auto); jatuh ke clock bila tidak bisa diparse.
func (s *Service) lastUpdated(providerTime string) string {
	if t, err := time.Parse("2006-01-02T15:04", providerTime); err == nil {
		return t.Format("Mon, 2 Jan 2006 15:04")
	}
	return s.clock.Now().Format("Mon, 2 Jan 2006 15:04")
}
