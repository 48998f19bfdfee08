package taxonomy

import (
	"context"

	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

func tools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool:    mcp.NewTool("faqd_paths", mcp.WithDescription("List the distinct paths of all FAQ entries")),
			Handler: listPaths,
		},
		{
			Tool:    mcp.NewTool("faqd_tops", mcp.WithDescription("List the distinct top-level path segments")),
			Handler: listTops,
		},
		{
			Tool: mcp.NewTool("faqd_subpaths",
				mcp.WithDescription("List the remainder of every path that starts with the given top-level segment"),
				mcp.WithString("top", mcp.Required(), mcp.Description("Top-level segment")),
			),
			Handler: listSubpaths,
		},
		{
			Tool:    mcp.NewTool("faqd_tree", mcp.WithDescription("The path taxonomy as nested {label, path, nodes} objects")),
			Handler: tree,
		},
	}
}

func listPaths(ctx context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paths, err := extCtx.Service().UniquePaths(ctx)
	log.Event("mcp:paths", "list").Author("mcp").Backend(extCtx.Backend()).Count(len(paths)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(paths)
}

func listTops(ctx context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tops, err := extCtx.Service().TopLevelSegments(ctx)
	log.Event("mcp:tops", "list").Author("mcp").Backend(extCtx.Backend()).Count(len(tops)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(tops)
}

func listSubpaths(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	top, err := req.RequireString("top")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	subs, err := extCtx.Service().SubPathsUnder(ctx, top)
	log.Event("mcp:subpaths", "list").Author("mcp").Backend(extCtx.Backend()).Paths([]string{top}).Count(len(subs)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(subs)
}

func tree(ctx context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodes, err := extCtx.Service().Tree(ctx)
	log.Event("mcp:tree", "list").Author("mcp").Backend(extCtx.Backend()).Count(len(nodes)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(nodes)
}
