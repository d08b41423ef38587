package keymap

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "table", "filters", "search"
}

// All contains all key bindings, in help display order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSearch, []string{"/"}, "Search by name or symbol", ContextGlobal},
	{ActionFilters, []string{"f"}, "Open filters", ContextGlobal},
	{ActionReset, []string{"r"}, "Reset filters", ContextGlobal},
	{ActionToggleTheme, []string{"t"}, "Toggle dark/light theme", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Table
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextTable},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextTable},
	{ActionMoveLeft, []string{"h", "left"}, "Move left", ContextTable},
	{ActionMoveRight, []string{"l", "right"}, "Move right", ContextTable},
	{ActionJumpStart, []string{"g", "home"}, "First element", ContextTable},
	{ActionJumpEnd, []string{"G", "end"}, "Last element", ContextTable},
	{ActionToggleCard, []string{"enter"}, "Show/hide details", ContextTable},
	{ActionCycleCategory, []string{"c"}, "Next category", ContextTable},
	{ActionCycleState, []string{"s"}, "Next state", ContextTable},

	// Filter drawer
	{ActionMoveUp, []string{"k", "up"}, "Previous option", ContextFilters},
	{ActionMoveDown, []string{"j", "down"}, "Next option", ContextFilters},
	{ActionNextSection, []string{"tab", "l", "right"}, "Next section", ContextFilters},
	{ActionPrevSection, []string{"shift+tab", "h", "left"}, "Previous section", ContextFilters},
	{ActionSelect, []string{"enter", " "}, "Apply option", ContextFilters},
	{ActionClose, []string{"esc", "f"}, "Close filters", ContextFilters},

	// Search field
	{ActionConfirm, []string{"enter"}, "Keep query", ContextSearch},
	{ActionCancel, []string{"esc"}, "Clear query", ContextSearch},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
