package periodic

import (
	"fmt"
	"strconv"
	"strings"
)

// Strict reports the elements a build left out as an error.
// It returns nil when every element was placed.
func Strict(g Grid) error {
	if len(g.Dropped) == 0 {
		return nil
	}
	nums := make([]string, len(g.Dropped))
	for i, n := range g.Dropped {
		nums[i] = strconv.Itoa(n)
	}
	return fmt.Errorf("%d element(s) could not be placed on the table: %s",
		len(g.Dropped), strings.Join(nums, ", "))
}
