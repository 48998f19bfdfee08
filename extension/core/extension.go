// Package core provides the core extension for faqd.
// It registers commands: init, config, index, serve, guide, version.
package core

import (
	"github.com/jpl-au/faqd/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Indexless     = (*Extension)(nil)
)

// Name returns "core" - this extension provides workspace and server commands.
func (e *Extension) Name() string { return "core" }

// Init keeps the shared context for the MCP server.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		newIndexCmd(),
		e.newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns the guide tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{guideTool()}
}

// NoIndexCommands returns the commands that work without an open index.
// serve is absent: it needs the index before it can answer a tool call.
func (e *Extension) NoIndexCommands() []string {
	return []string{"init", "config", "index", "guide", "version"}
}
