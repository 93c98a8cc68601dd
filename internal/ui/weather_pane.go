package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderWeatherSection renders the weather forecast section of the detail
// panel.
func (m Model) renderWeatherSection() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		sectionHeaderStyle.Render("Weather"),
		"  ",
		horizonToggle(m.weatherDays),
	)

	var content string
	switch {
	case m.loadingWeather:
		content = mutedStyle.Render("Fetching weather...")
	case m.weatherErr != nil:
		content = errorStyle.Render(fmt.Sprintf("Could not load weather data. %v", m.weatherErr))
	case len(m.weather) == 0:
		content = mutedStyle.Render("No weather data available")
	default:
		var b strings.Builder
		for i, day := range m.weather {
			label := day.Label
			if day.IsToday {
				label = valueStyle.Render(label)
			} else {
				label = labelStyle.Render(label)
			}
			b.WriteString(fmt.Sprintf("%s  %s  %d°C  %d mph",
				lipgloss.NewStyle().Width(6).Render(label),
				day.Condition.Icon(),
				day.MaxTempC,
				day.MaxWindMph))
			if i < len(m.weather)-1 {
				b.WriteString("\n")
			}
		}
		content = b.String()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}
