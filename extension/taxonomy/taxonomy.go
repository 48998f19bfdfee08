// Package taxonomy provides the taxonomy extension: views over the distinct
// paths of the indexed FAQ entries.
// Registers commands: paths, tops, subpaths, tree.
package taxonomy

import (
	"fmt"

	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/format"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/jpl-au/faqd/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the taxonomy extension.
type Extension struct {
	svc     service.Service
	backend string
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "taxonomy".
func (e *Extension) Name() string { return "taxonomy" }

// Init connects to the shared read service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.backend = ctx.Backend()
	return nil
}

// Commands returns the taxonomy views.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newPathsCmd(),
		e.newTopsCmd(),
		e.newSubpathsCmd(),
		e.newTreeCmd(),
	}
}

// MCPTools returns the taxonomy tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return tools()
}

func (e *Extension) newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List distinct entry paths",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			paths, err := e.svc.UniquePaths(c.Context())
			log.Event("taxonomy:paths", "list").Author(cmd.Author()).Backend(e.backend).Count(len(paths)).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("paths: %w", err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(paths)
			}
			return format.Paths(cmd.Out(), paths)
		},
	}
}

func (e *Extension) newTopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tops",
		Short: "List distinct top-level path segments",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tops, err := e.svc.TopLevelSegments(c.Context())
			log.Event("taxonomy:tops", "list").Author(cmd.Author()).Backend(e.backend).Count(len(tops)).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("tops: %w", err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(tops)
			}
			return format.Segments(cmd.Out(), tops)
		},
	}
}

func (e *Extension) newSubpathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subpaths <top>",
		Short: "List the paths under a top-level segment, without it",
		Long: `List the remainder of every distinct path that starts with top.

  faqd subpaths Hosp    # ER, ICU`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			top := args[0]
			subs, err := e.svc.SubPathsUnder(c.Context(), top)
			log.Event("taxonomy:subpaths", "list").Author(cmd.Author()).Backend(e.backend).Paths([]string{top}).Count(len(subs)).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("subpaths %q: %w", top, err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(subs)
			}
			return format.Paths(cmd.Out(), subs)
		},
	}
}

func (e *Extension) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the path taxonomy as a tree",
		Long: `Fold every distinct path into a tree. JSON output uses label, path and
nodes for each node.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			nodes, err := e.svc.Tree(c.Context())
			log.Event("taxonomy:tree", "list").Author(cmd.Author()).Backend(e.backend).Count(len(nodes)).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("tree: %w", err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(nodes)
			}
			return format.Tree(cmd.Out(), nodes)
		},
	}
}
