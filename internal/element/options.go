package element

import (
	"slices"
	"sort"
	"strconv"
)

// Groups returns the distinct group labels of the dataset: numeric groups
// ascending, then the non-numeric labels in the order they first appear.
func Groups(elements []Element) []string {
	groups := distinct(elements, func(e Element) string { return e.Group })
	sort.SliceStable(groups, func(i, j int) bool {
		return groupRank(groups[i]) < groupRank(groups[j])
	})
	return groups
}

// groupRank sorts numeric labels by value and everything else last.
func groupRank(label string) int {
	if n, err := strconv.Atoi(label); err == nil {
		return n
	}
	return 999
}

// States returns the distinct physical states, sorted.
func States(elements []Element) []string {
	states := distinct(elements, func(e Element) string { return e.State })
	slices.Sort(states)
	return states
}

// Categories returns the distinct categories present in the dataset, sorted.
func Categories(elements []Element) []Category {
	raw := distinct(elements, func(e Element) string { return string(e.Category) })
	slices.Sort(raw)
	out := make([]Category, len(raw))
	for i, c := range raw {
		out[i] = Category(c)
	}
	return out
}

func distinct(elements []Element, key func(Element) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range elements {
		k := key(e)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
