package element

import (
	"errors"
	"fmt"
)

// MaxNumber is the highest atomic number of the canonical table.
const MaxNumber = 118

// Validate checks dataset invariants: unique atomic numbers in 1..118,
// unique symbols and names, periods in 1..7 and non-empty display fields.
// All violations are reported together.
func Validate(elements []Element) error {
	var errs []error
	numbers := make(map[int]bool, len(elements))
	symbols := make(map[string]bool, len(elements))
	names := make(map[string]bool, len(elements))

	for _, e := range elements {
		if e.Number < 1 || e.Number > MaxNumber {
			errs = append(errs, fmt.Errorf("element %q: atomic number %d out of range", e.Symbol, e.Number))
		}
		if numbers[e.Number] {
			errs = append(errs, fmt.Errorf("duplicate atomic number %d", e.Number))
		}
		numbers[e.Number] = true

		if e.Symbol == "" || e.Name == "" {
			errs = append(errs, fmt.Errorf("element %d: missing symbol or name", e.Number))
		} else {
			if symbols[e.Symbol] {
				errs = append(errs, fmt.Errorf("duplicate symbol %q", e.Symbol))
			}
			if names[e.Name] {
				errs = append(errs, fmt.Errorf("duplicate name %q", e.Name))
			}
			symbols[e.Symbol] = true
			names[e.Name] = true
		}

		if e.Period < 1 || e.Period > 7 {
			errs = append(errs, fmt.Errorf("element %d: period %d out of range", e.Number, e.Period))
		}
		if e.Group == "" || e.State == "" || e.Category == "" {
			errs = append(errs, fmt.Errorf("element %d: missing group, state or category", e.Number))
		}
	}
	return errors.Join(errs...)
}
