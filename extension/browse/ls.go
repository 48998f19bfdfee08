// ls.go implements the "faqd ls" command.

package browse

import (
	"fmt"

	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/format"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [segment...]",
		Short: "List FAQ entries",
		Long: `List FAQ entries, optionally restricted to a path.

Each argument is one path segment and all must match:
  faqd ls                # every entry
  faqd ls Hosp ER        # entries whose path contains Hosp and ER
  faqd ls -l Uni         # with questions`,
		RunE: e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Show questions")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)

	docs, err := e.svc.ListByPaths(c.Context(), args)

	log.Event("browse:ls", "list").
		Author(cmd.Author()).
		Backend(e.backend).
		Paths(args).
		Count(len(docs)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(docs)
	}
	if long {
		return format.Long(cmd.Out(), docs)
	}
	return format.List(cmd.Out(), docs)
}
