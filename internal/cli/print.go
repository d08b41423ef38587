package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/llehouerou/periodic/internal/filter"
	"github.com/llehouerou/periodic/internal/ui/table"
)

func newPrintCmd(e *env) *cobra.Command {
	var (
		sel    = filter.Default()
		narrow bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the table once with the filter applied",
		Example: `  periodic print --group 1 --state Solid
  periodic print --category "Noble Gas" --narrow
  periodic print --search iron`,
		Args: cobra.NoArgs,
		RunE: e.withEnv(func(cmd *cobra.Command, _ []string) error {
			options := filter.OptionsFor(e.elements)
			for _, f := range filter.Fields {
				if err := checkChoice(f, sel.Get(f), options.For(f)); err != nil {
					return err
				}
			}
			sel.Search = strings.TrimSpace(sel.Search)

			t := table.New(&e.grid)
			t.SetNarrow(narrow)
			t.SetCursorVisible(false)
			t.SetSelection(sel)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.View())
			fmt.Fprintln(out)
			n := filter.Count(e.elements, sel)
			fmt.Fprintf(out, "%s of %d\n", english.Plural(n, "match", "matches"), len(e.elements))
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&sel.Group, "group", filter.All, "group to highlight (1-18, Lanthanide, Actinide)")
	flags.StringVar(&sel.State, "state", filter.All, "state of matter to highlight")
	flags.StringVar(&sel.Category, "category", filter.All, "category to highlight")
	flags.StringVar(&sel.Search, "search", "", "name or symbol substring")
	flags.BoolVar(&narrow, "narrow", false, "use one-line cells")
	return cmd
}

// checkChoice rejects values that are not offered for the field, since they
// could never match and would silently dim the whole table.
func checkChoice(f filter.Field, value string, choices []string) error {
	if value == "" || slices.Contains(choices, value) {
		return nil
	}
	return fmt.Errorf("unknown %s %q (choose from %s)", f, value, strings.Join(choices, ", "))
}
