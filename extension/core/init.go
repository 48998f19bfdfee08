// init.go implements the "faqd init" command.
//
// Init creates the .faqd directory and its .gitignore. It does not write
// config or an index: settings come from "faqd config" and the index from
// whatever feeds the search engine.

package core

import (
	"fmt"
	"path/filepath"

	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/jpl-au/faqd/internal/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Initialise a faqd workspace",
		Long: `Creates a .faqd directory in the current directory.

Use --dir to create it elsewhere:
  faqd init --dir /path/to/project

Use --local to keep the default embedded indexes out of git:
  faqd init --local

Point faqd at an index with "faqd config index.backend" and
"faqd config index.path" (or index.url for Solr).`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark the default indexes as local (gitignored)")
	return c
}

func runInit(c *cobra.Command, _ []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	dir := cmd.Dir()

	// --local edits the current project's .gitignore; with --dir the
	// workspace lives elsewhere.
	if local && dir != "" {
		return cmd.PrintJSONError(fmt.Errorf("cannot use --local with --dir: --local modifies the current project's .gitignore, but --dir creates the workspace elsewhere"))
	}

	err := repo.Init(cmd.Force(), dir, local)

	log.Event("core:init", "init").
		Author(cmd.Author()).
		Detail("dir", dir).
		Detail("local", local).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	loc := repo.Dir
	if dir != "" {
		loc = filepath.Join(dir, repo.Dir)
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"dir": loc})
	}
	fmt.Fprintf(cmd.Out(), "Initialised faqd workspace in %s\n", loc)
	return nil
}
