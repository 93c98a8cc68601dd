package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TwistedSD/uk-fishing-map/internal/catalog"
	"github.com/TwistedSD/uk-fishing-map/internal/config"
	"github.com/TwistedSD/uk-fishing-map/internal/forecast"
	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := &config.Config{
		DataBaseURL:      "http://localhost:1",
		FunctionsBaseURL: "http://localhost:1",
		OpenMeteoBaseURL: "http://localhost:1",
		StationCachePath: filepath.Join(t.TempDir(), "stations.db"),
		RequestTimeout:   time.Second,
	}
	return NewModel(cfg)
}

func testCatalog(stations []models.TideStation) *catalog.Catalog {
	return &catalog.Catalog{
		Species: map[string]models.Species{
			"bass": {ID: "bass", CommonName: "European Bass", ScientificName: "Dicentrarchus labrax"},
			"cod":  {ID: "cod", CommonName: "Atlantic Cod", ScientificName: "Gadus morhua"},
		},
		Marks: []models.Mark{{
			Name:              "Craster Rocks",
			County:            "Northumberland",
			NearestTown:       "Craster",
			MarkType:          "rock mark",
			Latitude:          "55.47 N",
			Longitude:         "1.59 W",
			TargetableSpecies: []string{"bass", "cod", "not-in-catalog"},
		}},
		Stations: stations,
	}
}

func loadedModel(t *testing.T, stations []models.TideStation) Model {
	t.Helper()
	m := testModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	updated, _ = m.Update(catalogLoadedMsg{catalog: testCatalog(stations)})
	m = updated.(Model)

	if m.state != StateBrowse {
		t.Fatalf("after catalog load, state = %v, want StateBrowse", m.state)
	}
	return m
}

func selectFirstMark(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.state != StateMarkDetail {
		t.Fatalf("after selecting a mark, state = %v, want StateMarkDetail", m.state)
	}
	return m, cmd
}

var testStations = []models.TideStation{
	{ID: "0113", Name: "Craster", Latitude: 55.47, Longitude: -1.59},
	{ID: "0025", Name: "Whitby", Latitude: 54.49, Longitude: -0.61},
}

func TestNewModel(t *testing.T) {
	m := testModel(t)
	if m.state != StateLoading {
		t.Errorf("NewModel() state = %v, want StateLoading", m.state)
	}
	if m.activePane != PaneWeather {
		t.Errorf("NewModel() activePane = %v, want PaneWeather", m.activePane)
	}
	if m.weatherDays != 1 || m.tideDays != 1 {
		t.Errorf("NewModel() horizons = %d/%d, want 1/1", m.weatherDays, m.tideDays)
	}
}

func TestModel_CatalogLoadError_IsFatal(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(catalogLoadedMsg{err: errors.New("boom")})
	m = updated.(Model)
	if m.state != StateError {
		t.Errorf("after failed catalog load, state = %v, want StateError", m.state)
	}

	// 'r' retries the load.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if m.state != StateLoading {
		t.Errorf("after retry, state = %v, want StateLoading", m.state)
	}
	if cmd == nil {
		t.Error("retry should issue a load command")
	}
}

func TestModel_SelectMark_FetchesBothForecasts(t *testing.T) {
	m := loadedModel(t, testStations)
	m, cmd := selectFirstMark(t, m)

	if cmd == nil {
		t.Fatal("selecting a mark should issue fetch commands")
	}
	if !m.loadingWeather || !m.loadingTide {
		t.Errorf("loading flags = %v/%v, want true/true", m.loadingWeather, m.loadingTide)
	}
	if m.weatherDays != 1 || m.tideDays != 1 {
		t.Errorf("horizons = %d/%d, want default 1/1", m.weatherDays, m.tideDays)
	}

	// The species grid resolves exactly the catalog-known species, in order.
	cards := m.speciesCards()
	if len(cards) != 2 {
		t.Fatalf("speciesCards() = %d cards, want 2 (unknown id skipped)", len(cards))
	}
	if cards[0].ID != "bass" || cards[1].ID != "cod" {
		t.Errorf("cards = %s, %s; want bass, cod", cards[0].ID, cards[1].ID)
	}
	if _, ok := m.speciesForID("bass"); !ok {
		t.Error("speciesForID(bass) should resolve")
	}
}

func TestModel_SelectMark_NoStations_TidesUnavailable(t *testing.T) {
	m := loadedModel(t, nil)
	m, cmd := selectFirstMark(t, m)

	if !m.noStation {
		t.Error("noStation should be set when the station catalog is empty")
	}
	if m.loadingTide {
		t.Error("no tide fetch should be pending without stations")
	}
	if cmd == nil {
		t.Error("weather fetch should still be issued")
	}
	if !strings.Contains(m.renderTideSection(), "unavailable") {
		t.Error("tide section should render an unavailable message, not an error")
	}
}

func TestModel_SpeciesDetail_AndBack(t *testing.T) {
	m := loadedModel(t, testStations)
	m, _ = selectFirstMark(t, m)

	// Move to the second card and open it.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.state != StateSpeciesDetail {
		t.Fatalf("after opening a species, state = %v, want StateSpeciesDetail", m.state)
	}
	if m.species == nil || m.species.ID != "cod" {
		t.Fatalf("species = %+v, want cod", m.species)
	}
	if m.mark == nil || m.mark.Name != "Craster Rocks" {
		t.Error("mark must be retained under the species selection for back navigation")
	}

	// Back restores the mark panel and re-issues the default 1-day fetches.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.state != StateMarkDetail {
		t.Errorf("after back, state = %v, want StateMarkDetail", m.state)
	}
	if m.species != nil {
		t.Error("species selection should be cleared on back")
	}
	if !m.loadingWeather || !m.loadingTide {
		t.Error("back should re-trigger both default fetches")
	}
	if m.weatherDays != 1 || m.tideDays != 1 {
		t.Errorf("back should reset horizons, got %d/%d", m.weatherDays, m.tideDays)
	}
	if cmd == nil {
		t.Error("back should issue fetch commands")
	}
}

func TestModel_HorizonToggle_OnlyRefetchesFocusedType(t *testing.T) {
	m := loadedModel(t, testStations)
	m, _ = selectFirstMark(t, m)

	// Settle both fetches.
	updated, _ := m.Update(weatherFetchedMsg{gen: m.weatherGen, days: []forecast.WeatherDay{{Label: "Today"}}})
	m = updated.(Model)
	updated, _ = m.Update(tidesFetchedMsg{gen: m.tideGen, found: true,
		station: testStations[0], days: []forecast.TideDay{{Label: "Sat 29 Aug"}}})
	m = updated.(Model)

	tideGroupsBefore := len(m.tideGroups)

	// Toggle the weather horizon to 7 days.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})
	m = updated.(Model)

	if m.weatherDays != 7 {
		t.Errorf("weatherDays = %d, want 7 (optimistic toggle)", m.weatherDays)
	}
	if !m.loadingWeather {
		t.Error("weather should be re-fetching after its toggle")
	}
	if cmd == nil {
		t.Error("toggle should issue exactly the weather fetch")
	}
	if m.tideDays != 1 {
		t.Errorf("tideDays = %d, want untouched 1", m.tideDays)
	}
	if m.loadingTide || len(m.tideGroups) != tideGroupsBefore {
		t.Error("tide pane must be unaffected by a weather toggle")
	}

	// Tab to the tide pane, toggle it to 7 days.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})
	m = updated.(Model)

	if m.tideDays != 7 || !m.loadingTide {
		t.Errorf("tide toggle: days = %d loading = %v, want 7/true", m.tideDays, m.loadingTide)
	}
	if cmd == nil {
		t.Error("tide toggle should issue a fetch")
	}
	if m.weatherDays != 7 {
		t.Error("weather horizon must survive a tide toggle")
	}
}

func TestModel_StaleForecastResponsesAreDiscarded(t *testing.T) {
	m := loadedModel(t, testStations)
	m, _ = selectFirstMark(t, m)

	staleGen := m.weatherGen - 1
	updated, _ := m.Update(weatherFetchedMsg{gen: staleGen, days: []forecast.WeatherDay{{Label: "stale"}}})
	m = updated.(Model)

	if len(m.weather) != 0 {
		t.Error("a response from an earlier generation must be discarded")
	}
	if !m.loadingWeather {
		t.Error("stale response must not clear the loading flag")
	}

	// The current generation still lands.
	updated, _ = m.Update(weatherFetchedMsg{gen: m.weatherGen, days: []forecast.WeatherDay{{Label: "Today"}}})
	m = updated.(Model)
	if len(m.weather) != 1 || m.loadingWeather {
		t.Error("current-generation response should render")
	}
}

func TestModel_TideFetchError_RendersInline(t *testing.T) {
	m := loadedModel(t, testStations)
	m, _ = selectFirstMark(t, m)

	updated, _ := m.Update(tidesFetchedMsg{gen: m.tideGen, found: true,
		station: testStations[0], err: errors.New("tidal data not available for this station (status 404)")})
	m = updated.(Model)

	if m.state != StateMarkDetail {
		t.Errorf("a tide fetch error must stay inline, state = %v", m.state)
	}
	out := m.renderTideSection()
	if !strings.Contains(out, "Could not load tide data") || !strings.Contains(out, "404") {
		t.Errorf("tide section should carry the failure and status, got %q", out)
	}
}

func TestModel_EmptyTideFeed_DistinctFromError(t *testing.T) {
	m := loadedModel(t, testStations)
	m, _ = selectFirstMark(t, m)

	updated, _ := m.Update(tidesFetchedMsg{gen: m.tideGen, found: true, station: testStations[0]})
	m = updated.(Model)

	out := m.renderTideSection()
	if !strings.Contains(out, "No tide predictions available for Craster") {
		t.Errorf("empty feed should render a no-predictions message, got %q", out)
	}
	if strings.Contains(out, "Could not load") {
		t.Error("empty feed must not render as an error")
	}
}

func TestModel_CloseDetail_DiscardsDerivedState(t *testing.T) {
	m := loadedModel(t, testStations)
	m, _ = selectFirstMark(t, m)

	updated, _ := m.Update(weatherFetchedMsg{gen: m.weatherGen, days: []forecast.WeatherDay{{Label: "Today"}}})
	m = updated.(Model)
	genBefore := m.weatherGen

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.state != StateBrowse {
		t.Errorf("after close, state = %v, want StateBrowse", m.state)
	}
	if m.mark != nil || len(m.weather) != 0 || len(m.tideGroups) != 0 {
		t.Error("close must discard the selection and derived records")
	}
	if m.weatherGen == genBefore {
		t.Error("close must bump the generation so in-flight fetches are orphaned")
	}
}

func TestModel_VisitCounter(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(visitCountMsg{count: 128})
	m = updated.(Model)
	if m.visitCount != "128" {
		t.Errorf("visitCount = %q, want 128", m.visitCount)
	}

	updated, _ = m.Update(visitCountMsg{err: errors.New("offline")})
	m = updated.(Model)
	if m.visitCount != "N/A" {
		t.Errorf("visitCount after failure = %q, want N/A", m.visitCount)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Ctrl+C should return a quit command")
	}
}

func TestModel_SpeciesCursor_Bounds(t *testing.T) {
	m := loadedModel(t, testStations)
	m, _ = selectFirstMark(t, m)

	// Cursor cannot move above the first card.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.speciesCursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.speciesCursor)
	}

	// Nor past the last card.
	for i := 0; i < 5; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
	}
	if m.speciesCursor != 1 {
		t.Errorf("cursor = %d after repeated down, want 1 (two cards)", m.speciesCursor)
	}
}
