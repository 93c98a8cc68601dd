package forecast

import (
	"fmt"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

// TideEventView is one display-ready tide event.
type TideEventView struct {
	Time   string // "15:04"
	Kind   string // "High" or "Low"
	Height string // "4.20 m"
}

// TideDay groups consecutive tidal events sharing a calendar date.
type TideDay struct {
	Label  string // e.g. "Sat 30 Aug"
	Events []TideEventView
}

// GroupTidalEvents buckets a pre-sorted event sequence by calendar date,
// preserving the feed's order within and across groups. The feed is assumed
// sorted; no re-sorting happens here. Empty input yields an empty result,
// which callers render as "no predictions" rather than an error.
func GroupTidalEvents(events []models.TidalEvent) []TideDay {
	var days []TideDay
	for _, ev := range events {
		label := ev.DateTime.Format("Mon 2 Jan")
		if len(days) == 0 || days[len(days)-1].Label != label {
			days = append(days, TideDay{Label: label})
		}
		view := TideEventView{
			Time:   ev.DateTime.Format("15:04"),
			Kind:   ev.Type.Label(),
			Height: fmt.Sprintf("%.2f m", ev.Height),
		}
		days[len(days)-1].Events = append(days[len(days)-1].Events, view)
	}
	return days
}
