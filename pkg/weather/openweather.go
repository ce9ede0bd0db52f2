package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"garden/entities"
)

type openWeather struct {
	endpoint string
	key      string
	city     string
	units    string
}

// NewOpenWeather talks to an OpenWeatherMap-compatible API. endpoint may be
// empty to use the public host.
func NewOpenWeather(endpoint, key, city, units string) Provider {
	if endpoint == "" {
		endpoint = "https://api.openweathermap.org"
	}
	if units == "" {
		units = "metric"
	}
	return &openWeather{endpoint: endpoint, key: key, city: city, units: units}
}

func (c *openWeather) get(path string, out any) error {
	q := url.Values{}
	q.Set("q", c.city)
	q.Set("appid", c.key)
	q.Set("units", c.units)
	httpc := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpc.Get(c.endpoint + path + "?" + q.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather upstream: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *openWeather) Current() (*entities.WeatherSnapshot, error) {
	var out struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}
	if err := c.get("/data/2.5/weather", &out); err != nil {
		return nil, err
	}
	snap := &entities.WeatherSnapshot{Temp: out.Main.Temp, Humidity: out.Main.Humidity}
	if len(out.Weather) > 0 {
		snap.Description = out.Weather[0].Description
		snap.Icon = out.Weather[0].Icon
	}
	return snap, nil
}

func (c *openWeather) Forecast() (map[string]any, error) {
	var out map[string]any
	if err := c.get("/data/2.5/forecast", &out); err != nil {
		return nil, err
	}
	return out, nil
}
