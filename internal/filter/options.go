package filter

import "github.com/llehouerou/periodic/internal/element"

// Options holds the choices offered for each enumerated field, each
// starting with All.
type Options struct {
	Groups     []string
	States     []string
	Categories []string
}

// OptionsFor derives the filter choices from a dataset.
func OptionsFor(elements []element.Element) Options {
	cats := element.Categories(elements)
	categories := make([]string, 0, len(cats)+1)
	categories = append(categories, All)
	for _, c := range cats {
		categories = append(categories, string(c))
	}
	return Options{
		Groups:     append([]string{All}, element.Groups(elements)...),
		States:     append([]string{All}, element.States(elements)...),
		Categories: categories,
	}
}

// For returns the choices of one field.
func (o Options) For(f Field) []string {
	switch f {
	case FieldGroup:
		return o.Groups
	case FieldState:
		return o.States
	case FieldCategory:
		return o.Categories
	}
	return nil
}
