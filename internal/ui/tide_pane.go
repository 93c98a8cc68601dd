package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTideSection renders the tide predictions section of the detail
// panel. Unavailability of station data degrades to a message, never an
// error.
func (m Model) renderTideSection() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		sectionHeaderStyle.Render("Tide Predictions"),
		"  ",
		horizonToggle(m.tideDays),
	)

	var content string
	switch {
	case m.noStation:
		content = mutedStyle.Render("Tide station data is unavailable.")
	case m.loadingTide:
		content = mutedStyle.Render("Finding nearest tide station...")
	case m.tideErr != nil:
		content = errorStyle.Render(fmt.Sprintf("Could not load tide data. %v", m.tideErr))
	case m.tidesLoaded && len(m.tideGroups) == 0:
		content = mutedStyle.Render(fmt.Sprintf("No tide predictions available for %s.", m.tideStation.Name))
	case len(m.tideGroups) == 0:
		content = mutedStyle.Render("No tide data available")
	default:
		var b strings.Builder
		b.WriteString(mutedStyle.Render(fmt.Sprintf("From %s", m.tideStation.Name)))
		b.WriteString("\n")
		for _, day := range m.tideGroups {
			b.WriteString(labelStyle.Render(day.Label))
			b.WriteString("\n")
			for _, ev := range day.Events {
				kind := tideLowStyle.Render(ev.Kind)
				if ev.Kind == "High" {
					kind = tideHighStyle.Render(ev.Kind)
				}
				b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
					valueStyle.Render(ev.Time),
					lipgloss.NewStyle().Width(4).Render(kind),
					ev.Height))
			}
		}
		content = strings.TrimRight(b.String(), "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}
