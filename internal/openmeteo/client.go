// Package openmeteo fetches daily forecasts from the Open-Meteo API, the
// one third-party service called directly rather than through a proxy.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

// Client fetches daily weather forecasts.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an Open-Meteo client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// forecastResponse mirrors the subset of the API response we request.
type forecastResponse struct {
	Daily struct {
		Time           []string  `json:"time"`
		WeatherCode    []int     `json:"weathercode"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		WindSpeedMax   []float64 `json:"windspeed_10m_max"`
	} `json:"daily"`
}

// GetDailyForecast requests a daily forecast for the point, `days` days
// long. Timezone is resolved by the provider so day boundaries follow the
// mark's local calendar.
func (c *Client) GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*models.DailyWeather, error) {
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("daily", "weathercode,temperature_2m_max,windspeed_10m_max")
	params.Add("forecast_days", strconv.Itoa(days))
	params.Add("timezone", "auto")

	requestURL := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return &models.DailyWeather{
		Time:           fr.Daily.Time,
		WeatherCode:    fr.Daily.WeatherCode,
		TemperatureMax: fr.Daily.TemperatureMax,
		WindSpeedMax:   fr.Daily.WindSpeedMax,
	}, nil
}
