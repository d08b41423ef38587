// Package app is the root bubbletea model of the interactive table.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/periodic/internal/element"
	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/keymap"
	"github.com/llehouerou/periodic/internal/periodic"
	"github.com/llehouerou/periodic/internal/state"
	"github.com/llehouerou/periodic/internal/ui/filterpanel"
	"github.com/llehouerou/periodic/internal/ui/helpbindings"
	"github.com/llehouerou/periodic/internal/ui/styles"
	"github.com/llehouerou/periodic/internal/ui/table"
	"github.com/llehouerou/periodic/internal/ui/textinput"
)

// Focus is the component receiving key presses.
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
	FocusFilters
)

// Options configures a new Model.
type Options struct {
	Elements        []element.Element
	Grid            periodic.Grid
	State           state.Interface // nil disables persistence
	Logger          *zap.Logger     // nil means no logging
	Theme           string          // used when no theme was saved
	NarrowThreshold int
}

// Model is the root application model.
type Model struct {
	elements   []element.Element
	grid       *periodic.Grid
	options    filter.Options
	selection  filter.Selection
	keys       *keymap.Resolver
	stateMgr   state.Interface
	logger     *zap.Logger
	threshold  int
	focus      Focus
	drawerOpen bool
	showHelp   bool
	showCard   bool

	table  table.Model
	search textinput.Model
	drawer *filterpanel.Model
	help   *helpbindings.Model

	notice   string
	noticeID int64

	width  int
	height int
}

// New creates the application model and restores saved preferences.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	grid := opts.Grid
	options := filter.OptionsFor(opts.Elements)
	m := Model{
		elements:  opts.Elements,
		grid:      &grid,
		options:   options,
		selection: filter.Default(),
		keys:      keymap.NewResolver(keymap.All),
		stateMgr:  opts.State,
		logger:    logger,
		threshold: opts.NarrowThreshold,
		showCard:  true,
		table:     table.New(&grid),
		search:    textinput.New(),
		drawer:    filterpanel.New(options),
		help:      helpbindings.New(),
	}

	theme := opts.Theme
	if prefs := m.loadPreferences(); prefs != nil {
		if prefs.Theme != "" {
			theme = prefs.Theme
		}
		if prefs.CursorElement > 0 && !m.table.SetCursor(prefs.CursorElement) {
			logger.Debug("saved cursor element not on table", zap.Int("number", prefs.CursorElement))
		}
	}
	if !styles.SetTheme(theme) && theme != "" {
		logger.Warn("unknown theme, using dark", zap.String("theme", theme))
	}

	logger.Info("table ready",
		zap.Int("elements", len(opts.Elements)),
		zap.Int("dropped", len(grid.Dropped)),
		zap.String("theme", styles.T().Name))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the current filter selection.
func (m Model) Selection() filter.Selection {
	return m.selection
}

// Focus returns the component receiving keys.
func (m Model) Focus() Focus {
	return m.focus
}

// DrawerOpen reports whether the filter drawer is shown.
func (m Model) DrawerOpen() bool {
	return m.drawerOpen
}

// Selected returns the element under the cursor.
func (m Model) Selected() *element.Element {
	return m.table.Selected()
}

// Narrow reports whether the terminal is below the narrow threshold.
func (m Model) Narrow() bool {
	return m.table.Narrow()
}
