// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionSearch      Action = "search"
	ActionFilters     Action = "filters"
	ActionReset       Action = "reset"
	ActionToggleTheme Action = "toggle_theme"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Table actions
	ActionToggleCard    Action = "toggle_card"    // enter
	ActionCycleCategory Action = "cycle_category" // c
	ActionCycleState    Action = "cycle_state"    // s

	// Filter drawer actions
	ActionNextSection Action = "next_section" // tab
	ActionPrevSection Action = "prev_section" // shift+tab
	ActionSelect      Action = "select"       // enter/space - pick the badge
	ActionClose       Action = "close"        // esc

	// Search actions
	ActionConfirm Action = "confirm" // enter - keep query, leave field
	ActionCancel  Action = "cancel"  // esc - clear query, leave field
)

// Contexts used by bindings.
const (
	ContextGlobal  = "global"
	ContextTable   = "table"
	ContextFilters = "filters"
	ContextSearch  = "search"
)
