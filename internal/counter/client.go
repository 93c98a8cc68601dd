// Package counter reads the site visit counter. The serverless endpoint
// increments the stored count as a side effect of every read.
package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client fetches the visit count.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a counter client rooted at the serverless functions
// prefix.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetCount fetches (and thereby increments) the visit count. Callers render
// "N/A" on any failure; the counter is cosmetic and must never block the
// rest of the app.
func (c *Client) GetCount(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/count", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch visit count: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("counter API returned status %d", resp.StatusCode)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode visit count: %w", err)
	}
	return body.Count, nil
}
