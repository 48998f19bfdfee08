// export.go implements the "faqd export" command: a markdown mirror of the
// index on disk. Only the destination is written; the index is read-only.

package browse

import (
	"fmt"
	"io"

	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/exporter"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write FAQ entries to markdown files",
		Long: `Write each FAQ entry to <dir>/<segment>/.../<id>.md.

  faqd export ./faq              # every entry
  faqd export ./er -p Hosp -p ER # only entries under Hosp and ER
  faqd export ./faq --force      # overwrite existing files`,
		Args: cobra.ExactArgs(1),
		RunE: e.runExport,
	}
	c.Flags().StringArrayP(extension.FlagPath, "p", nil, "Path segment that must match (repeatable)")
	return c
}

func (e *Extension) runExport(c *cobra.Command, args []string) error {
	paths, _ := c.Flags().GetStringArray(extension.FlagPath)
	dst := args[0]

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}
	res, err := exporter.Run(c.Context(), w, e.svc, dst, exporter.Options{Paths: paths, Force: cmd.Force()})

	log.Event("browse:export", "export").
		Author(cmd.Author()).
		Backend(e.backend).
		Paths(paths).
		Count(res.Exported).
		Detail("dst", dst).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("export: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}
	return nil
}
