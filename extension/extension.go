// Package extension provides the plugin architecture for faqd. Extensions
// bundle related commands and MCP tools and register at init time, so new
// read views can be added without touching the root command.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for faqd extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context once the index is open.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Indexless is an optional interface for extensions with commands that
// must run without an open index. Commands returned by NoIndexCommands()
// do not trigger index initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like init) that run before any index exists
// 2. Commands that only touch config or the .faqd directory
// 3. Documentation and version output
type Indexless interface {
	NoIndexCommands() []string
}
