package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TwistedSD/uk-fishing-map/internal/admiralty"
	"github.com/TwistedSD/uk-fishing-map/internal/catalog"
	"github.com/TwistedSD/uk-fishing-map/internal/config"
	"github.com/TwistedSD/uk-fishing-map/internal/counter"
	"github.com/TwistedSD/uk-fishing-map/internal/forecast"
	"github.com/TwistedSD/uk-fishing-map/internal/geo"
	"github.com/TwistedSD/uk-fishing-map/internal/models"
	"github.com/TwistedSD/uk-fishing-map/internal/openmeteo"
	"github.com/TwistedSD/uk-fishing-map/internal/stations"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading       AppState = iota // Startup catalog load in progress
	StateBrowse                        // Mark list, nothing selected
	StateMarkDetail                    // A mark is selected
	StateSpeciesDetail                 // A species of the selected mark is open
	StateError                         // Fatal catalog load error
)

// ForecastPane represents which forecast section is currently focused;
// horizon keys apply to the focused section only.
type ForecastPane int

const (
	PaneWeather ForecastPane = iota
	PaneTide
)

// Model represents the application's state
type Model struct {
	state      AppState
	activePane ForecastPane
	width      int
	height     int
	err        error

	// Services
	loader        *catalog.Loader
	weatherClient *openmeteo.Client
	tideClient    *admiralty.Client
	counterClient *counter.Client

	// Catalogs, loaded once at startup and read-only after
	catalog     *catalog.Catalog
	stationRepo *stations.Repository

	// Browse
	markList list.Model
	spinner  spinner.Model

	// Selection. species is non-nil only in StateSpeciesDetail, and mark is
	// always retained underneath it so "back" is lossless.
	mark          *models.Mark
	species       *models.Species
	speciesCursor int

	// Forecast state. Generations are bumped on every selection (both) and
	// on a horizon toggle (that type only); responses from an older
	// generation are discarded.
	weatherGen     int
	tideGen        int
	weatherDays    int
	tideDays       int
	loadingWeather bool
	loadingTide    bool
	weather        []forecast.WeatherDay
	weatherErr     error
	tideStation    models.TideStation
	tideGroups     []forecast.TideDay
	tidesLoaded    bool
	tideErr        error
	noStation      bool

	visitCount string
}

// NewModel creates a new application model from configuration.
func NewModel(cfg *config.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		state:         StateLoading,
		activePane:    PaneWeather,
		loader:        catalog.NewLoader(cfg),
		weatherClient: openmeteo.NewClient(cfg.OpenMeteoBaseURL, cfg.RequestTimeout),
		tideClient:    admiralty.NewClient(cfg.FunctionsBaseURL, cfg.RequestTimeout),
		counterClient: counter.NewClient(cfg.FunctionsBaseURL, cfg.RequestTimeout),
		spinner:       s,
		weatherDays:   1,
		tideDays:      1,
	}
}

// Init starts the catalog load and the visit counter fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadCatalog(m.loader),
		fetchVisitCount(m.counterClient),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.catalog != nil {
			m.markList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.catalog = msg.catalog
		m.stationRepo = stations.NewRepository(msg.catalog.Stations)
		m.markList = createMarkList(msg.catalog.Marks, m.width-4, m.height-10)
		m.state = StateBrowse
		return m, nil

	case visitCountMsg:
		if msg.err != nil {
			m.visitCount = "N/A"
		} else {
			m.visitCount = fmt.Sprintf("%d", msg.count)
		}
		return m, nil

	case weatherFetchedMsg:
		if msg.gen != m.weatherGen {
			return m, nil // stale response from an earlier selection or toggle
		}
		m.loadingWeather = false
		m.weather = msg.days
		m.weatherErr = msg.err
		return m, nil

	case tidesFetchedMsg:
		if msg.gen != m.tideGen {
			return m, nil
		}
		m.loadingTide = false
		if !msg.found {
			m.noStation = true
			return m, nil
		}
		m.tideStation = msg.station
		m.tideGroups = msg.days
		m.tideErr = msg.err
		m.tidesLoaded = msg.err == nil
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" || keyMsg.String() == "q" {
			return m, tea.Quit
		}

		switch m.state {
		case StateBrowse:
			return m.handleBrowse(msg)
		case StateMarkDetail:
			return m.handleMarkDetail(keyMsg)
		case StateSpeciesDetail:
			return m.handleSpeciesDetail(keyMsg)
		case StateError:
			if keyMsg.String() == "r" {
				m.err = nil
				m.state = StateLoading
				return m, tea.Batch(m.spinner.Tick, loadCatalog(m.loader))
			}
			return m, nil
		}
	}

	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateBrowse:
		m.markList, cmd = m.markList.Update(msg)
	}

	return m, cmd
}

// handleBrowse handles input while the mark list is showing.
func (m Model) handleBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if item, ok := m.markList.SelectedItem().(markItem); ok {
			return m.enterMark(item.mark)
		}
	}

	m.markList, cmd = m.markList.Update(msg)
	return m, cmd
}

// enterMark selects a mark: species grid renders synchronously, both
// forecasts are fetched concurrently at the default 1-day horizon. Entering
// a mark always resets both horizons, including on "back" from species
// detail; that reset matches the original behaviour on re-selection.
func (m Model) enterMark(mk models.Mark) (tea.Model, tea.Cmd) {
	m.mark = &mk
	m.species = nil
	m.speciesCursor = 0
	m.state = StateMarkDetail
	m.activePane = PaneWeather

	m.weatherGen++
	m.tideGen++
	m.weatherDays = 1
	m.tideDays = 1
	m.weather = nil
	m.weatherErr = nil
	m.tideStation = models.TideStation{}
	m.tideGroups = nil
	m.tidesLoaded = false
	m.tideErr = nil

	lat := geo.ParseCoordinate(mk.Latitude)
	lon := geo.ParseCoordinate(mk.Longitude)

	m.loadingWeather = true
	cmds := []tea.Cmd{fetchWeather(m.weatherClient, m.weatherGen, lat, lon, m.weatherDays)}

	if m.stationRepo.Empty() {
		m.noStation = true
		m.loadingTide = false
	} else {
		m.noStation = false
		m.loadingTide = true
		cmds = append(cmds, fetchTides(m.tideClient, m.stationRepo, m.tideGen, lat, lon, m.tideDays))
	}

	return m, tea.Batch(cmds...)
}

// closeDetail discards the selection and all derived records.
func (m Model) closeDetail() (tea.Model, tea.Cmd) {
	m.mark = nil
	m.species = nil
	m.speciesCursor = 0
	m.weatherGen++ // orphan any in-flight fetches
	m.tideGen++
	m.weather = nil
	m.weatherErr = nil
	m.tideGroups = nil
	m.tidesLoaded = false
	m.tideErr = nil
	m.loadingWeather = false
	m.loadingTide = false
	m.state = StateBrowse
	return m, nil
}

// handleMarkDetail handles input while a mark's detail is showing.
func (m Model) handleMarkDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeDetail()

	case "tab":
		if m.activePane == PaneWeather {
			m.activePane = PaneTide
		} else {
			m.activePane = PaneWeather
		}
		return m, nil

	case "1":
		return m.setHorizon(1)
	case "7":
		return m.setHorizon(7)

	case "up", "k", "left", "h":
		if m.speciesCursor > 0 {
			m.speciesCursor--
		}
		return m, nil

	case "down", "j", "right", "l":
		if m.speciesCursor < len(m.speciesCards())-1 {
			m.speciesCursor++
		}
		return m, nil

	case "enter":
		cards := m.speciesCards()
		if m.speciesCursor < len(cards) {
			sp := cards[m.speciesCursor]
			m.species = &sp
			m.state = StateSpeciesDetail
		}
		return m, nil
	}

	return m, nil
}

// setHorizon applies a horizon to the focused forecast section and re-issues
// that fetch only; the other section keeps its horizon and content. The
// toggle takes effect immediately, before the fetch resolves.
func (m Model) setHorizon(days int) (tea.Model, tea.Cmd) {
	if m.mark == nil {
		return m, nil
	}
	lat := geo.ParseCoordinate(m.mark.Latitude)
	lon := geo.ParseCoordinate(m.mark.Longitude)

	switch m.activePane {
	case PaneWeather:
		m.weatherDays = days
		m.weatherGen++
		m.loadingWeather = true
		m.weatherErr = nil
		return m, fetchWeather(m.weatherClient, m.weatherGen, lat, lon, days)

	case PaneTide:
		if m.noStation {
			return m, nil
		}
		m.tideDays = days
		m.tideGen++
		m.loadingTide = true
		m.tideErr = nil
		return m, fetchTides(m.tideClient, m.stationRepo, m.tideGen, lat, lon, days)
	}
	return m, nil
}

// handleSpeciesDetail handles input while a species detail is showing.
func (m Model) handleSpeciesDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		// Back to the mark panel. Forecasts are not cached across this
		// transition; the mark is re-entered with fresh default fetches.
		if m.mark != nil {
			return m.enterMark(*m.mark)
		}
		return m.closeDetail()
	case "x":
		return m.closeDetail()
	}
	return m, nil
}

// speciesCards resolves the active mark's targetable species against the
// species index, preserving catalog order. Unknown ids are skipped.
func (m Model) speciesCards() []models.Species {
	if m.mark == nil || m.catalog == nil {
		return nil
	}
	cards := make([]models.Species, 0, len(m.mark.TargetableSpecies))
	for _, id := range m.mark.TargetableSpecies {
		if sp, ok := m.catalog.SpeciesByID(id); ok {
			cards = append(cards, sp)
		}
	}
	return cards
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateBrowse:
		return m.viewBrowse()
	case StateMarkDetail:
		return m.viewMarkDetail()
	case StateSpeciesDetail:
		return m.viewSpeciesDetail()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLoading renders the startup screen.
func (m Model) viewLoading() string {
	title := titleStyle.Render("🎣 UK Fishing Map")
	status := mutedStyle.Render("Loading fishing marks, species and tide stations...")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewBrowse renders the mark list.
func (m Model) viewBrowse() string {
	title := titleStyle.Render("🎣 UK Fishing Map")
	subtitle := mutedStyle.Render("Coastal marks, likely catches, weather and tides")

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select mark • Q: Quit")

	sections := []string{title, subtitle, "", m.markList.View(), "", help}
	if m.visitCount != "" {
		sections = append(sections, mutedStyle.Render(fmt.Sprintf("Visits: %s", m.visitCount)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders the fatal load error view.
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errorMsg := "Could not load essential fishing data."
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("R: Retry • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}
