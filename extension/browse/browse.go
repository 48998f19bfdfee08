// Package browse provides the browse extension: listing, reading, searching,
// comparing and exporting FAQ entries.
// Registers commands: ls, get, search, compare, export.
package browse

import (
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the browse extension.
type Extension struct {
	svc     service.Service
	backend string
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "browse".
func (e *Extension) Name() string { return "browse" }

// Init connects to the shared read service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.backend = ctx.Backend()
	return nil
}

// Commands returns the document read commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newLsCmd(),
		e.newGetCmd(),
		e.newSearchCmd(),
		e.newCompareCmd(),
		e.newExportCmd(),
	}
}

// MCPTools returns the document read tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return tools()
}
