// serve.go implements the "faqd serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/faqd/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --index to serve a named index:
  faqd serve --index uni    # serve index-uni.bleve, or the uni Solr core`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(e.ctx)
		},
	}
}
