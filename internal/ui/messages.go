package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TwistedSD/uk-fishing-map/internal/admiralty"
	"github.com/TwistedSD/uk-fishing-map/internal/catalog"
	"github.com/TwistedSD/uk-fishing-map/internal/counter"
	"github.com/TwistedSD/uk-fishing-map/internal/forecast"
	"github.com/TwistedSD/uk-fishing-map/internal/models"
	"github.com/TwistedSD/uk-fishing-map/internal/openmeteo"
	"github.com/TwistedSD/uk-fishing-map/internal/stations"
)

// Message types for async operations. Forecast messages carry the
// generation they were issued under; the model drops any message whose
// generation no longer matches, so a slow response for a previous mark or
// horizon never overwrites fresher content.

// catalogLoadedMsg is sent when the startup catalog load finishes.
type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

// visitCountMsg is sent when the visit counter responds.
type visitCountMsg struct {
	count int
	err   error
}

// weatherFetchedMsg is sent when a weather forecast has been fetched and
// formatted.
type weatherFetchedMsg struct {
	gen  int
	days []forecast.WeatherDay
	err  error
}

// tidesFetchedMsg is sent when tide predictions have been fetched and
// grouped. found is false when no station catalog was available.
type tidesFetchedMsg struct {
	gen     int
	found   bool
	station models.TideStation
	days    []forecast.TideDay
	err     error
}

const fetchTimeout = 30 * time.Second

// loadCatalog runs the startup load in the background.
func loadCatalog(loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalog.LoadTimeout)
		defer cancel()

		cat, err := loader.Load(ctx)
		return catalogLoadedMsg{catalog: cat, err: err}
	}
}

// fetchVisitCount fetches the visit counter once at startup.
func fetchVisitCount(client *counter.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		count, err := client.GetCount(ctx)
		return visitCountMsg{count: count, err: err}
	}
}

// fetchWeather fetches and formats a daily forecast for a point.
func fetchWeather(client *openmeteo.Client, gen int, lat, lon float64, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		daily, err := client.GetDailyForecast(ctx, lat, lon, days)
		if err != nil {
			return weatherFetchedMsg{gen: gen, err: err}
		}
		return weatherFetchedMsg{gen: gen, days: forecast.BuildWeatherDays(*daily)}
	}
}

// fetchTides resolves the nearest tide station and fetches its predictions.
func fetchTides(client *admiralty.Client, repo *stations.Repository, gen int, lat, lon float64, days int) tea.Cmd {
	return func() tea.Msg {
		st, ok := repo.Nearest(lat, lon)
		if !ok {
			return tidesFetchedMsg{gen: gen, found: false}
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		events, err := client.GetTidalEvents(ctx, st.ID, days)
		if err != nil {
			return tidesFetchedMsg{gen: gen, found: true, station: st, err: err}
		}
		return tidesFetchedMsg{gen: gen, found: true, station: st, days: forecast.GroupTidalEvents(events)}
	}
}
