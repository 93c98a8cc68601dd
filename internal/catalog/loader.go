// Package catalog loads the static datasets the app needs at startup: the
// species catalog, the mark (location) catalog and the tide station catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/TwistedSD/uk-fishing-map/internal/admiralty"
	"github.com/TwistedSD/uk-fishing-map/internal/config"
	"github.com/TwistedSD/uk-fishing-map/internal/models"
	"github.com/TwistedSD/uk-fishing-map/internal/stations"
)

// Catalog holds the loaded datasets. Species and Marks are always populated
// on success; Stations may be empty when the station feed and its cache were
// both unavailable, in which case tide features degrade to "unavailable".
type Catalog struct {
	Species  map[string]models.Species
	Marks    []models.Mark
	Stations []models.TideStation
}

// SpeciesByID looks a species up in the index.
func (c *Catalog) SpeciesByID(id string) (models.Species, bool) {
	sp, ok := c.Species[id]
	return sp, ok
}

// Loader fetches the three startup datasets.
type Loader struct {
	dataBaseURL    string
	cachePath      string
	httpClient     *http.Client
	stationsClient *admiralty.Client
}

// NewLoader builds a loader from the app configuration.
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		dataBaseURL: cfg.DataBaseURL,
		cachePath:   cfg.StationCachePath,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		stationsClient: admiralty.NewClient(cfg.FunctionsBaseURL, cfg.RequestTimeout),
	}
}

// Load fetches species, marks and stations concurrently and joins. Species
// and marks are required: either failing fails the load. The station fetch
// is optional: on failure the last cached catalog is used, and failing that
// the station set is empty.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	type speciesResult struct {
		list []models.Species
		err  error
	}
	type marksResult struct {
		marks []models.Mark
		err   error
	}
	type stationsResult struct {
		sts []models.TideStation
		err error
	}

	speciesCh := make(chan speciesResult, 1)
	marksCh := make(chan marksResult, 1)
	stationsCh := make(chan stationsResult, 1)

	go func() {
		var list []models.Species
		err := l.fetchJSON(ctx, l.dataBaseURL+"/fish.json", &list)
		speciesCh <- speciesResult{list: list, err: err}
	}()
	go func() {
		var marks []models.Mark
		err := l.fetchJSON(ctx, l.dataBaseURL+"/locations.json", &marks)
		marksCh <- marksResult{marks: marks, err: err}
	}()
	go func() {
		sts, err := l.stationsClient.GetStations(ctx)
		stationsCh <- stationsResult{sts: sts, err: err}
	}()

	species := <-speciesCh
	marks := <-marksCh
	sts := <-stationsCh

	if species.err != nil {
		return nil, fmt.Errorf("could not load essential fishing data: %w", species.err)
	}
	if marks.err != nil {
		return nil, fmt.Errorf("could not load essential fishing data: %w", marks.err)
	}

	cat := &Catalog{
		Species: indexSpecies(species.list),
		Marks:   marks.marks,
	}

	if sts.err != nil {
		log.Printf("could not load tide stations, trying cache: %v", sts.err)
		cached, cacheErr := stations.LoadCache(l.cachePath)
		if cacheErr != nil {
			log.Printf("no cached tide stations, tide predictions will be unavailable: %v", cacheErr)
		} else {
			cat.Stations = cached
		}
	} else {
		cat.Stations = sts.sts
		if err := stations.SaveCache(l.cachePath, sts.sts); err != nil {
			log.Printf("could not cache tide stations: %v", err)
		}
	}

	return cat, nil
}

// indexSpecies builds the id index. Duplicate ids overwrite earlier entries;
// last wins.
func indexSpecies(list []models.Species) map[string]models.Species {
	idx := make(map[string]models.Species, len(list))
	for _, sp := range list {
		idx[sp.ID] = sp
	}
	return idx
}

func (l *Loader) fetchJSON(ctx context.Context, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", requestURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", requestURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", requestURL, err)
	}
	return nil
}

// LoadTimeout bounds the whole startup load.
const LoadTimeout = 60 * time.Second
