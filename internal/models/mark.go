package models

import "fmt"

// Mark is a named fishing location from the static location catalog.
// Coordinates are kept as the catalog's human-readable strings ("54.5 N");
// geo.ParseCoordinate turns them into decimal degrees at the point of use.
type Mark struct {
	Name              string   `json:"name"`
	County            string   `json:"county"`
	NearestTown       string   `json:"nearestTown"`
	MarkType          string   `json:"markType"`
	Latitude          string   `json:"latitude"`
	Longitude         string   `json:"longitude"`
	TargetableSpecies []string `json:"targetableSpecies"`
}

// Summary returns the one-line description shown under the mark name.
func (m Mark) Summary() string {
	return fmt.Sprintf("A %s in %s, near %s.", m.MarkType, m.County, m.NearestTown)
}
