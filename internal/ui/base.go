// Package ui holds what the table's components share.
package ui

// Base tracks the focus and size every component is given by the app.
// Embed it in component models:
//
//	type Model struct {
//	    ui.Base
//	    grid *periodic.Grid
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the area the component may draw into.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

func (b Base) Width() int {
	return b.width
}

func (b Base) Height() int {
	return b.height
}
