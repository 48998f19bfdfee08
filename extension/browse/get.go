// get.go implements the "faqd get" command for reading one entry.
//
// Terminal output gets glamour markdown rendering; pipe/redirect gets plain
// markdown. --raw prints the stored fields without markdown.

package browse

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/format"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newGetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "get <id>",
		Short: "Read an FAQ entry",
		Long:  `Print the question, path, answer and comment of one FAQ entry.`,
		Args:  cobra.ExactArgs(1),
		RunE:  e.runGet,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print fields without markdown rendering")
	return c
}

func (e *Extension) runGet(c *cobra.Command, args []string) error {
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	id := args[0]

	doc, err := e.svc.ByID(c.Context(), id)

	log.Event("browse:get", "read").
		Author(cmd.Author()).
		Backend(e.backend).
		ID(id).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("get %q: %w", id, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(doc)
	}
	if raw {
		return format.Raw(cmd.Out(), *doc)
	}

	md := format.Document(*doc)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(md, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}
	fmt.Fprint(cmd.Out(), md)
	return nil
}
