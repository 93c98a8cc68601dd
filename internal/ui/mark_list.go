package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

// markItem wraps a Mark for use in the browse list.
type markItem struct {
	mark models.Mark
}

// FilterValue implements list.Item
func (i markItem) FilterValue() string {
	return i.mark.Name + " " + i.mark.County
}

// Title implements list.DefaultItem
func (i markItem) Title() string {
	return i.mark.Name
}

// Description implements list.DefaultItem
func (i markItem) Description() string {
	return i.mark.Summary()
}

// createMarkList creates a list.Model over the mark catalog.
func createMarkList(marks []models.Mark, width, height int) list.Model {
	items := make([]list.Item, len(marks))
	for i, mk := range marks {
		items[i] = markItem{mark: mk}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Fishing Mark"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
