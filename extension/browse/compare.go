// compare.go implements the "faqd compare" command: a line diff of two
// answers.

package browse

import (
	"fmt"
	"os"

	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/format"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newCompareCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "compare <id> <id>",
		Short: "Diff the answers of two FAQ entries",
		Args:  cobra.ExactArgs(2),
		RunE:  e.runCompare,
	}
	c.Flags().Bool(extension.FlagNoColour, false, "Disable coloured output")
	return c
}

func (e *Extension) runCompare(c *cobra.Command, args []string) error {
	noColour, _ := c.Flags().GetBool(extension.FlagNoColour)

	r, err := e.svc.Compare(c.Context(), args[0], args[1])

	log.Event("browse:compare", "diff").
		Author(cmd.Author()).
		Backend(e.backend).
		ID(args[0]).
		Detail("other", args[1]).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("compare %q %q: %w", args[0], args[1], err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(r)
	}
	colour := !noColour && term.IsTerminal(int(os.Stdout.Fd()))
	return format.Diff(cmd.Out(), r, colour)
}
