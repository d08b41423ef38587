package app

import (
	"go.uber.org/zap"

	"github.com/llehouerou/periodic/internal/filter"
)

// applySelection pushes the selection to every component that shows it.
func (m *Model) applySelection() {
	m.table.SetSelection(m.selection)
	m.drawer.SetSelection(m.selection)
	m.logger.Debug("filter changed",
		zap.String("group", m.selection.Group),
		zap.String("state", m.selection.State),
		zap.String("category", m.selection.Category),
		zap.String("search", m.selection.Search),
		zap.Int("matches", m.matches()))
}

// resetFilters restores the default selection and clears the search field.
func (m *Model) resetFilters() {
	m.selection.Reset()
	m.search.SetValue("")
	m.applySelection()
}

func (m Model) matches() int {
	return filter.Count(m.elements, m.selection)
}
