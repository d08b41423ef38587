package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/periodic/internal/element"
	"github.com/llehouerou/periodic/internal/errmsg"
	"github.com/llehouerou/periodic/internal/ui/card"
)

func newShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "show <symbol|number|name>",
		Short:   "Print the detail card of an element",
		Example: "  periodic show Fe\n  periodic show 26\n  periodic show iron",
		Args:    cobra.ExactArgs(1),
		RunE: e.withEnv(func(cmd *cobra.Command, args []string) error {
			el, ok := element.Find(e.elements, args[0])
			if !ok {
				return errors.New(errmsg.FormatWith(errmsg.OpElementFind, args[0], errNotFound))
			}
			fmt.Fprintln(cmd.OutOrStdout(), card.Render(&el, card.Width))
			return nil
		}),
	}
}

var errNotFound = errors.New("no such element")
