// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the default terminal width below which the layout
// switches to narrow mode: one-line cells, legend hidden and the filter
// drawer opening at the bottom instead of the left.
const NarrowThreshold = 120

// Table cell geometry.
const (
	WideCellWidth    = 6
	WideCellHeight   = 3
	NarrowCellWidth  = 3
	NarrowCellHeight = 1

	// LabelWidth is the period label column on the left of the table.
	LabelWidth = 3
	// GroupHeaderHeight is the row of group numbers above the table.
	GroupHeaderHeight = 1
	// FBlockGap separates the main table from the lanthanide/actinide rows.
	FBlockGap = 1

	mainRows   = 7
	fBlockRows = 2
	columns    = 18
)

// Filter drawer geometry.
const (
	DrawerWidth     = 32 // left drawer, wide mode
	DrawerMinHeight = 8  // bottom drawer, narrow mode
	DrawerMaxHeight = 14
)

// Side is where the filter drawer opens.
type Side int

const (
	SideLeft Side = iota
	SideBottom
)

func (s Side) String() string {
	if s == SideBottom {
		return "bottom"
	}
	return "left"
}

// IsNarrowMode returns true if the terminal width is below threshold.
// A non-positive threshold uses NarrowThreshold.
func IsNarrowMode(width, threshold int) bool {
	if threshold <= 0 {
		threshold = NarrowThreshold
	}
	return width < threshold
}

// CellSize returns the width and height of one element cell.
func CellSize(narrow bool) (width, height int) {
	if narrow {
		return NarrowCellWidth, NarrowCellHeight
	}
	return WideCellWidth, WideCellHeight
}

// TableSize returns the rendered size of the whole table including labels.
func TableSize(narrow bool) (width, height int) {
	cw, ch := CellSize(narrow)
	width = LabelWidth + columns*cw
	height = GroupHeaderHeight + mainRows*ch + FBlockGap + fBlockRows*ch
	return width, height
}

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	LegendHeight int // 0 in narrow mode
	StatusHeight int
}

// ContentHeight calculates the height left for the table and drawer.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.LegendHeight
	height -= opts.StatusHeight
	return max(height, 0)
}

// Drawer describes where the filter drawer goes and how big it is.
type Drawer struct {
	Side   Side
	Width  int
	Height int
}

// DrawerFor sizes the filter drawer for the content area.
// The drawer is a full-height column on the left when the table still fits
// beside it, otherwise a full-width band at the bottom taking about a third
// of the height. The table is never clipped to make room for the drawer.
func DrawerFor(width, contentHeight int, narrow bool) Drawer {
	if tableWidth, _ := TableSize(narrow); !narrow && width-DrawerWidth >= tableWidth {
		return Drawer{
			Side:   SideLeft,
			Width:  DrawerWidth,
			Height: contentHeight,
		}
	}
	h := max(contentHeight/3, DrawerMinHeight)
	h = min(h, DrawerMaxHeight, contentHeight)
	return Drawer{Side: SideBottom, Width: width, Height: h}
}

// TableArea returns the space left to the table when the drawer is open.
func TableArea(width, contentHeight int, d Drawer, drawerOpen bool) (w, h int) {
	if !drawerOpen {
		return width, contentHeight
	}
	if d.Side == SideLeft {
		return max(width-d.Width, 0), contentHeight
	}
	return width, max(contentHeight-d.Height, 0)
}
