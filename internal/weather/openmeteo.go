// internal/weather/openmeteo.go
// Klien forecast Open-Meteo: blok current + seri harian, timezone=auto

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"neonsky/internal/util"
)

// flexFloat menerima angka atau string numerik dari provider.
// Nilai non-numerik / non-finite ditolak saat decode.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("expected a number, got %s", string(b))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("expected a number, got %s", string(b))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("non-finite number %s", string(b))
	}
	*f = flexFloat(v)
	return nil
}

// CurrentBlock adalah field instan mentah; kode cuaca belum diterjemahkan.
type CurrentBlock struct {
	Time        string
	Temperature flexFloat
	Humidity    flexFloat
	WindSpeed   flexFloat
	WeatherCode flexFloat
}

// DailyBlock berisi seri harian paralel (urutan kronologis dari provider).
type DailyBlock struct {
	Time        []string
	WeatherCode []flexFloat
	TempMax     []flexFloat
	TempMin     []flexFloat
}

type Forecast struct {
	Current CurrentBlock
	Daily   DailyBlock
}

// Bentuk wire dengan pointer supaya field angka yang absen atau null
// terdeteksi, bukan diam-diam jadi nol.
type currentWire struct {
	Time        string     `json:"time"`
	Temperature *flexFloat `json:"temperature_2m"`
	Humidity    *flexFloat `json:"relative_humidity_2m"`
	WindSpeed   *flexFloat `json:"wind_speed_10m"`
	WeatherCode *flexFloat `json:"weather_code"`
}

type dailyWire struct {
	Time        []string    `json:"time"`
	WeatherCode []flexFloat `json:"weather_code"`
	TempMax     []flexFloat `json:"temperature_2m_max"`
	TempMin     []flexFloat `json:"temperature_2m_min"`
}

type forecastWire struct {
	Current *currentWire `json:"current"`
	Daily   *dailyWire   `json:"daily"`
}

// validate memastikan semua angka wajib hadir sebelum dipakai pipeline.
func (w *forecastWire) validate() (*Forecast, error) {
	if w.Current == nil {
		return nil, util.BadData("forecast response missing current block", nil)
	}
	required := []struct {
		name string
		val  *flexFloat
	}{
		{"temperature_2m", w.Current.Temperature},
		{"relative_humidity_2m", w.Current.Humidity},
		{"wind_speed_10m", w.Current.WindSpeed},
		{"weather_code", w.Current.WeatherCode},
	}
	for _, f := range required {
		if f.val == nil {
			return nil, util.BadData(fmt.Sprintf("forecast current block missing %s", f.name), nil)
		}
	}

	if w.Daily == nil {
		return nil, util.BadData("forecast response missing daily block", nil)
	}
	if len(w.Daily.Time) > 0 && (w.Daily.WeatherCode == nil || w.Daily.TempMax == nil || w.Daily.TempMin == nil) {
		return nil, util.BadData("forecast daily block missing a required series", nil)
	}

	return &Forecast{
		Current: CurrentBlock{
			Time:        w.Current.Time,
			Temperature: *w.Current.Temperature,
			Humidity:    *w.Current.Humidity,
			WindSpeed:   *w.Current.WindSpeed,
			WeatherCode: *w.Current.WeatherCode,
		},
		Daily: DailyBlock{
			Time:        w.Daily.Time,
			WeatherCode: w.Daily.WeatherCode,
			TempMax:     w.Daily.TempMax,
			TempMin:     w.Daily.TempMin,
		},
	}, nil
}

type OpenMeteoClient struct {
	baseURL string
	http    *http.Client
}

func NewOpenMeteoClient(baseURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch mengambil kondisi terkini + forecast `days` hari untuk satu koordinat.
// Timezone ditentukan provider dari koordinat (timezone=auto).
func (c *OpenMeteoClient) Fetch(ctx context.Context, lat, lon float64, days int) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, util.Transport("build forecast request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, util.Transport("forecast request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.Transport(fmt.Sprintf("forecast returned status %d", resp.StatusCode), nil)
	}

	var wire forecastWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, util.BadData("decode forecast response", err)
	}
	return wire.validate()
}
