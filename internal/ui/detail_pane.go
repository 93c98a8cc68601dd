package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// viewMarkDetail renders the full detail panel for the selected mark:
// weather, tide predictions, likely catches and the regulations note.
func (m Model) viewMarkDetail() string {
	if m.mark == nil {
		return "No mark selected"
	}

	header := titleStyle.Render(m.mark.Name)
	summary := mutedStyle.Render(m.mark.Summary())

	weather := m.renderWeatherSection()
	if m.activePane == PaneWeather {
		weather = focusedSectionStyle.Render(weather)
	} else {
		weather = sectionStyle.Render(weather)
	}

	tide := m.renderTideSection()
	if m.activePane == PaneTide {
		tide = focusedSectionStyle.Render(tide)
	} else {
		tide = sectionStyle.Render(tide)
	}

	species := sectionStyle.Render(m.renderSpeciesSection())

	regulations := sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Regulations"),
		"Always check local and national regulations before fishing.",
	))

	help := helpStyle.Render("Tab: Focus forecast • 1/7: Horizon • ↑/↓ + Enter: Species • Esc: Close • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		summary,
		weather,
		tide,
		species,
		regulations,
		help,
	)
}

// horizonToggle renders the mutually exclusive 1-day/7-day control.
func horizonToggle(selected int) string {
	one := inactiveToggleStyle.Render(" 1 Day ")
	seven := inactiveToggleStyle.Render(" 7 Day ")
	if selected == 7 {
		seven = activeToggleStyle.Render(" 7 Day ")
	} else {
		one = activeToggleStyle.Render(" 1 Day ")
	}
	return fmt.Sprintf("%s %s", one, seven)
}
