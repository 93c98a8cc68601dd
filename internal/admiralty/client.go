// Package admiralty talks to the serverless proxies that front the UKHO
// tidal API. The proxies hold the subscription key; this client never sees
// it.
package admiralty

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

// Client fetches the tide station catalog and tidal event predictions.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a proxy client rooted at baseURL (the serverless
// functions prefix, without a trailing slash).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// featureCollection mirrors the GeoJSON the station proxy returns.
type featureCollection struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Properties struct {
			ID   string `json:"Id"`
			Name string `json:"Name"`
		} `json:"properties"`
	} `json:"features"`
}

// GetStations retrieves the full tide station catalog. Feature order is
// preserved; features without a usable coordinate pair are skipped.
func (c *Client) GetStations(ctx context.Context) ([]models.TideStation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get-stations", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("station API returned status %d", resp.StatusCode)
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to decode station response: %w", err)
	}

	sts := make([]models.TideStation, 0, len(fc.Features))
	for _, f := range fc.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		sts = append(sts, models.TideStation{
			ID:        f.Properties.ID,
			Name:      f.Properties.Name,
			Longitude: f.Geometry.Coordinates[0],
			Latitude:  f.Geometry.Coordinates[1],
		})
	}
	return sts, nil
}

// tidalEvent mirrors one element of the tidal events proxy response.
type tidalEvent struct {
	DateTime  string  `json:"DateTime"`
	EventType string  `json:"EventType"`
	Height    float64 `json:"Height"`
}

// GetTidalEvents retrieves high/low water predictions for a station over the
// given number of days. The feed's order is preserved. A non-success status
// surfaces as an error carrying the status code, which the UI shows inline.
func (c *Client) GetTidalEvents(ctx context.Context, stationID string, days int) ([]models.TidalEvent, error) {
	params := url.Values{}
	params.Add("stationId", stationID)
	params.Add("days", strconv.Itoa(days))

	requestURL := fmt.Sprintf("%s/get-tides?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tidal events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tidal data not available for this station (status %d)", resp.StatusCode)
	}

	var raw []tidalEvent
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode tidal events: %w", err)
	}

	events := make([]models.TidalEvent, 0, len(raw))
	for _, ev := range raw {
		when, err := parseEventTime(ev.DateTime)
		if err != nil {
			continue // skip rows with unusable timestamps
		}
		eventType := models.TideLowWater
		if ev.EventType == string(models.TideHighWater) {
			eventType = models.TideHighWater
		}
		events = append(events, models.TidalEvent{
			DateTime: when,
			Type:     eventType,
			Height:   ev.Height,
		})
	}
	return events, nil
}

// parseEventTime handles the UKHO feed's timestamps, which come as ISO-8601
// but usually without a zone offset (station-local time).
func parseEventTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
