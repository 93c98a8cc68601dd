package models

import "time"

// TideEventType distinguishes high from low water, using the UKHO API's
// own vocabulary.
type TideEventType string

const (
	TideHighWater TideEventType = "HighWater"
	TideLowWater  TideEventType = "LowWater"
)

// Label returns the short display form.
func (t TideEventType) Label() string {
	if t == TideHighWater {
		return "High"
	}
	return "Low"
}

// TidalEvent is a single predicted high or low water.
type TidalEvent struct {
	DateTime time.Time
	Type     TideEventType
	Height   float64 // metres above chart datum
}

// TideStation is a fixed point with published tide predictions, from the
// UKHO station catalog.
type TideStation struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}
