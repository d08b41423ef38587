// Package filter decides which elements match the user's current filter
// selection. Filtering never removes elements from the table: it only
// drives which cells are highlighted and which are dimmed.
package filter

import (
	"strings"

	"github.com/llehouerou/periodic/internal/element"
)

// All is the permissive value of the group, state and category fields.
const All = "All"

// Field names one of the enumerated selection fields.
type Field string

const (
	FieldGroup    Field = "group"
	FieldState    Field = "state"
	FieldCategory Field = "category"
)

// Fields lists the enumerated fields in drawer order.
var Fields = []Field{FieldGroup, FieldState, FieldCategory}

// Selection is the transient filter state owned by the view.
type Selection struct {
	Group    string
	State    string
	Category string
	Search   string
}

// Default returns the initial, match-everything selection.
func Default() Selection {
	return Selection{Group: All, State: All, Category: All}
}

// Reset restores every field to its default in a single update.
func (s *Selection) Reset() {
	*s = Default()
}

// Active reports whether at least one field narrows the match.
func (s Selection) Active() bool {
	return narrows(s.Group) || narrows(s.State) || narrows(s.Category) || s.Search != ""
}

// Get returns the value of an enumerated field.
func (s Selection) Get(f Field) string {
	switch f {
	case FieldGroup:
		return s.Group
	case FieldState:
		return s.State
	case FieldCategory:
		return s.Category
	}
	return ""
}

// Set assigns an enumerated field. An empty value means All.
func (s *Selection) Set(f Field, value string) {
	if value == "" {
		value = All
	}
	switch f {
	case FieldGroup:
		s.Group = value
	case FieldState:
		s.State = value
	case FieldCategory:
		s.Category = value
	}
}

// IsMatch reports whether e satisfies every predicate of the selection.
// Group, state and category compare exactly; the search text matches a
// case-insensitive substring of the name or the symbol.
func IsMatch(e *element.Element, s Selection) bool {
	return permits(s.Group, e.Group) &&
		permits(s.State, e.State) &&
		permits(s.Category, string(e.Category)) &&
		matchesText(e, s.Search)
}

// Highlighted reports whether e is drawn at full intensity: it matches,
// or no filter is active at all.
func Highlighted(e *element.Element, s Selection) bool {
	return !s.Active() || IsMatch(e, s)
}

// Apply returns the matching elements in dataset order.
func Apply(elements []element.Element, s Selection) []*element.Element {
	var out []*element.Element
	for i := range elements {
		if IsMatch(&elements[i], s) {
			out = append(out, &elements[i])
		}
	}
	return out
}

// Count returns how many elements match.
func Count(elements []element.Element, s Selection) int {
	n := 0
	for i := range elements {
		if IsMatch(&elements[i], s) {
			n++
		}
	}
	return n
}

// narrows reports whether an enumerated value restricts the match.
// The empty string behaves like All.
func narrows(v string) bool {
	return v != "" && v != All
}

func permits(want, got string) bool {
	return !narrows(want) || want == got
}

func matchesText(e *element.Element, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Symbol), q)
}
