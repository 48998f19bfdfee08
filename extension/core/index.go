// index.go implements the "faqd index" command for managing embedded index
// files.
//
// It never opens an index: it only inspects file names in .faqd and toggles
// their .gitignore entries, so it works on locked or half-written indexes.

package core

import (
	"fmt"

	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/config"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/jpl-au/faqd/internal/repo"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "index [name]",
		Short: "List embedded indexes or change their local/shared status",
		Long: `List the bleve and SQLite indexes in .faqd, or change whether one is
committed.

  faqd index                 # list all indexes
  faqd index --local         # mark the default index as local
  faqd index uni --local     # mark index-uni.bleve as local
  faqd index uni --share     # mark it as shared again
  faqd index uni             # show its status

The backend from config (index.backend) decides which file a name refers to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIndex,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark index as local")
	c.Flags().BoolP(extension.FlagShare, "s", false, "Mark index as shared")
	c.MarkFlagsMutuallyExclusive(extension.FlagLocal, extension.FlagShare)
	return c
}

// indexStatus is the JSON shape of one listed index.
type indexStatus struct {
	Name    string `json:"name"`
	File    string `json:"file"`
	Backend string `json:"backend"`
	Status  string `json:"status"`
}

func status(local bool) string {
	if local {
		return "local"
	}
	return "shared"
}

func runIndex(c *cobra.Command, args []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	share, _ := c.Flags().GetBool(extension.FlagShare)

	faqdDir, err := repo.Resolve(cmd.Dir())
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("index: %w", err))
	}

	if len(args) == 0 && !local && !share {
		err := listIndexes(faqdDir)
		log.Event("core:index", "list").Author(cmd.Author()).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("index list: %w", err))
		}
		return nil
	}

	backend := config.DefaultBackend
	if cfg, err := config.Load(); err == nil {
		backend = cfg.Backend()
	}
	name := cmd.Index()
	if len(args) > 0 {
		name = args[0]
	}
	file := repo.IndexFileName(backend, name)

	switch {
	case local:
		err = repo.Ignore(file, faqdDir)
		log.Event("core:index", "ignore").Author(cmd.Author()).Detail("file", file).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("index ignore %q: %w", file, err))
		}
		return printStatus(file, true)

	case share:
		err = repo.Unignore(file, faqdDir)
		log.Event("core:index", "unignore").Author(cmd.Author()).Detail("file", file).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("index unignore %q: %w", file, err))
		}
		return printStatus(file, false)
	}

	ignored, err := repo.IsIgnored(file, faqdDir)
	log.Event("core:index", "status").Author(cmd.Author()).Detail("file", file).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("index status %q: %w", file, err))
	}
	return printStatus(file, ignored)
}

func printStatus(file string, local bool) error {
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"file": file, "status": status(local)})
	}
	fmt.Fprintf(cmd.Out(), "%s: %s\n", file, status(local))
	return nil
}

func listIndexes(faqdDir string) error {
	infos, err := repo.ListIndexes(faqdDir)
	if err != nil {
		return err
	}

	if cmd.JSON() {
		out := make([]indexStatus, len(infos))
		for i, info := range infos {
			out[i] = indexStatus{Name: info.Name, File: info.File, Backend: info.Backend, Status: status(info.Local)}
		}
		return cmd.PrintJSON(out)
	}

	if len(infos) == 0 {
		fmt.Fprintln(cmd.Out(), "No indexes found")
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(cmd.Out(), "%s  %s  %s\n", info.File, info.Backend, status(info.Local))
	}
	return nil
}
