package stations

import (
	"math"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

// Repository holds the tide station catalog in memory for the session.
// The catalog may legitimately be empty when the station feed was down at
// startup and no cache existed; lookups then report unavailability instead
// of erroring.
type Repository struct {
	stations []models.TideStation
}

// NewRepository wraps a station catalog. Order is preserved: ties in the
// nearest-station scan resolve to the earlier catalog entry.
func NewRepository(sts []models.TideStation) *Repository {
	return &Repository{stations: sts}
}

// Empty reports whether any stations are available.
func (r *Repository) Empty() bool {
	return len(r.stations) == 0
}

// Count returns the catalog size.
func (r *Repository) Count() int {
	return len(r.stations)
}

// Nearest returns the station closest to the given point and true, or the
// zero station and false when the catalog is empty.
//
// Distance is planar Euclidean in raw degree units. That deliberately skips
// geodesic correction: at UK latitudes, picking the nearest of a few hundred
// coastal stations does not need it.
func (r *Repository) Nearest(lat, lon float64) (models.TideStation, bool) {
	if len(r.stations) == 0 {
		return models.TideStation{}, false
	}

	best := r.stations[0]
	bestDist := math.Hypot(lat-best.Latitude, lon-best.Longitude)
	for _, st := range r.stations[1:] {
		d := math.Hypot(lat-st.Latitude, lon-st.Longitude)
		if d < bestDist {
			best = st
			bestDist = d
		}
	}
	return best, true
}
