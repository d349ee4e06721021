package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// OpenMeteo answers via the open-meteo.com pair of endpoints: a geocoding
// lookup to turn the location phrase into coordinates, then the forecast
// endpoint for current conditions. No API key is required.
type OpenMeteo struct {
	GeocodeURL  string
	ForecastURL string
	UserAgent   string
	HTTPClient  *http.Client
}

func (o *OpenMeteo) Name() string { return "open-meteo" }

func (o *OpenMeteo) Current(ctx context.Context, location string) (Report, error) {
	lat, lon, resolved, err := o.geocode(ctx, location)
	if err != nil {
		return Report{}, err
	}
	cur, err := o.forecast(ctx, lat, lon)
	if err != nil {
		return Report{}, err
	}
	conditions := describeWeatherCode(cur.WeatherCode)
	sentence := fmt.Sprintf("Current weather in %s: %s, %.0f°C, humidity %d%%, wind %.0f km/h.",
		resolved, conditions, cur.Temperature, cur.Humidity, cur.WindSpeed)
	return Report{Location: resolved, Conditions: conditions, Sentence: sentence}, nil
}

func (o *OpenMeteo) geocode(ctx context.Context, location string) (lat, lon float64, name string, err error) {
	base := o.GeocodeURL
	if base == "" {
		base = defaultGeocodeURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return 0, 0, "", err
	}
	q := u.Query()
	q.Set("name", location)
	q.Set("count", "1")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Admin1    string  `json:"admin1"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := o.getJSON(ctx, u.String(), &payload); err != nil {
		return 0, 0, "", err
	}
	if len(payload.Results) == 0 {
		return 0, 0, "", fmt.Errorf("no geocoding match for %q", location)
	}
	r := payload.Results[0]
	name = r.Name
	if r.Admin1 != "" && !strings.EqualFold(r.Admin1, r.Name) {
		name = r.Name + ", " + r.Admin1
	}
	return r.Latitude, r.Longitude, name, nil
}

type currentConditions struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    int     `json:"relative_humidity_2m"`
	WindSpeed   float64 `json:"wind_speed_10m"`
	WeatherCode int     `json:"weather_code"`
}

func (o *OpenMeteo) forecast(ctx context.Context, lat, lon float64) (currentConditions, error) {
	base := o.ForecastURL
	if base == "" {
		base = defaultForecastURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return currentConditions{}, err
	}
	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	u.RawQuery = q.Encode()

	var payload struct {
		Current currentConditions `json:"current"`
	}
	if err := o.getJSON(ctx, u.String(), &payload); err != nil {
		return currentConditions{}, err
	}
	return payload.Current, nil
}

func (o *OpenMeteo) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if o.UserAgent != "" {
		req.Header.Set("User-Agent", o.UserAgent)
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("open-meteo status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// describeWeatherCode maps WMO interpretation codes to words. The table is
// deliberately coarse; unknown codes read as "unsettled".
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code >= 1 && code <= 3:
		return "partly cloudy"
	case code == 45 || code == 48:
		return "foggy"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code >= 85 && code <= 86:
		return "snow showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unsettled"
	}
}
