// Package mcp implements the Model Context Protocol server, exposing faqd's
// read operations to LLMs over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/faqd/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio with every registered extension's
// tools. It returns when the client disconnects or the process is
// interrupted.
func Serve(extCtx extension.Context) error {
	// stdout carries JSON-RPC, so diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx, extension.Tools())

	slog.Info("faqd MCP server ready", "version", Version, "backend", extCtx.Backend(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server: the document resource plus tools, each
// bound to extCtx.
func NewServer(extCtx extension.Context, tools []extension.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		"faqd",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, &handlers{ctx: extCtx})
	registerTools(s, extCtx, tools)
	return s
}

// handlers serves resources from the shared read service.
type handlers struct {
	ctx extension.Context
}

// registerResources adds URI-based access to single entries.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			documentURIPrefix+"{id}",
			"FAQ entry",
			mcp.WithTemplateDescription("One FAQ entry as markdown"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readDocument,
	)
}

// registerTools binds each extension tool handler to extCtx.
func registerTools(s *server.MCPServer, extCtx extension.Context, tools []extension.MCPTool) {
	for _, t := range tools {
		handler := t.Handler
		s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, extCtx, req)
		})
	}
}
