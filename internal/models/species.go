package models

import (
	"fmt"
	"net/url"
)

// Species is a fish species entry from the static species catalog.
type Species struct {
	ID                  string   `json:"id"`
	CommonName          string   `json:"commonName"`
	ScientificName      string   `json:"scientificName"`
	Family              string   `json:"family"`
	Description         string   `json:"description"`
	HabitatAndBehaviour string   `json:"habitatAndBehaviour"`
	MinimumSizeCm       float64  `json:"minimumSizeCm"`
	Baits               []string `json:"baits"`
	Lures               []string `json:"lures"`
	Rig                 string   `json:"rig,omitempty"`
	ConservationNote    string   `json:"conservationNote,omitempty"`
	IdentificationNote  string   `json:"identificationNote,omitempty"`
}

// MinimumSizeLabel renders the legal minimum landing size. A size of zero or
// below means there is no legal minimum and release is recommended.
func (s Species) MinimumSizeLabel() string {
	if s.MinimumSizeCm > 0 {
		return fmt.Sprintf("%g cm", s.MinimumSizeCm)
	}
	return "N/A - Catch & Release Recommended"
}

// PlaceholderImageURL builds the placehold.co URL used in place of real
// species photography.
func (s Species) PlaceholderImageURL(width, height int) string {
	return fmt.Sprintf("https://placehold.co/%dx%d/e3f2fd/0d47a1?text=%s",
		width, height, url.PathEscape(s.CommonName))
}
