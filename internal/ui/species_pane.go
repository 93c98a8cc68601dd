package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

// renderSpeciesSection renders the "Likely Catches" grid for the selected
// mark.
func (m Model) renderSpeciesSection() string {
	header := sectionHeaderStyle.Render("Likely Catches")

	cards := m.speciesCards()
	if len(cards) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			mutedStyle.Render("No species recorded for this mark."))
	}

	var b strings.Builder
	for i, sp := range cards {
		marker := "  "
		name := sp.CommonName
		if i == m.speciesCursor {
			marker = cursorStyle.Render("▸ ")
			name = cursorStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s", marker, name,
			mutedStyle.Render(fmt.Sprintf("(%s)", sp.ScientificName))))
		if i < len(cards)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, b.String())
}

// viewSpeciesDetail renders the full species view with a back control.
func (m Model) viewSpeciesDetail() string {
	if m.species == nil {
		return "No species selected"
	}
	sp := *m.species

	title := titleStyle.Render(sp.CommonName)
	subtitle := mutedStyle.Render(fmt.Sprintf("%s (%s)", sp.ScientificName, sp.Family))
	image := mutedStyle.Render(fmt.Sprintf("Image: %s", sp.PlaceholderImageURL(600, 400)))

	sections := []string{
		title,
		subtitle,
		image,
		renderInfoSection("Description", sp.Description),
		renderInfoSection("Habitat & Behaviour", sp.HabitatAndBehaviour),
		renderInfoSection("Angling Information",
			fmt.Sprintf("%s %s", labelStyle.Render("Minimum Size:"), sp.MinimumSizeLabel())),
		renderListSection("Recommended Baits", sp.Baits),
		renderListSection("Effective Lures", sp.Lures),
		renderInfoSection("Recommended Rig", orNotSpecified(sp.Rig)),
	}

	if sp.ConservationNote != "" {
		sections = append(sections, renderInfoSection("Conservation", sp.ConservationNote))
	}
	if sp.IdentificationNote != "" {
		sections = append(sections, renderInfoSection("Identification Note", sp.IdentificationNote))
	}

	sections = append(sections, helpStyle.Render("Esc/B: Back to mark • X: Close • Q: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderInfoSection(heading, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render(heading),
		body,
	)
}

func renderListSection(heading string, items []string) string {
	if len(items) == 0 {
		return renderInfoSection(heading, "None specified.")
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return renderInfoSection(heading, strings.Join(lines, "\n"))
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified."
	}
	return s
}

// speciesForID is a convenience used by tests to assert grid membership.
func (m Model) speciesForID(id string) (models.Species, bool) {
	if m.catalog == nil {
		return models.Species{}, false
	}
	return m.catalog.SpeciesByID(id)
}
