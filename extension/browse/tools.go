// tools.go exposes the browse operations as MCP tools.
//
// Handlers report failures as tool errors rather than Go errors so the
// client sees a message it can act on.

package browse

import (
	"context"

	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/mark3labs/mcp-go/mcp"
)

func tools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("faqd_list",
				mcp.WithDescription("List FAQ entries, optionally restricted to entries whose path contains every given segment"),
				mcp.WithArray("paths", mcp.Description("Path segments that must all match"), mcp.WithStringItems()),
			),
			Handler: listEntries,
		},
		{
			Tool: mcp.NewTool("faqd_get",
				mcp.WithDescription("Read one FAQ entry by id"),
				mcp.WithString("id", mcp.Required(), mcp.Description("Entry id")),
			),
			Handler: getEntry,
		},
		{
			Tool: mcp.NewTool("faqd_search",
				mcp.WithDescription(`Search question, answer and comment text for any of the given words. Use "null" as text to list every entry within paths`),
				mcp.WithString("text", mcp.Required(), mcp.Description(`Search words, or "null" for no text filter`)),
				mcp.WithArray("paths", mcp.Description("Path segments that must all match"), mcp.WithStringItems()),
				mcp.WithBoolean("explain", mcp.Description("Return the composed query instead of results")),
			),
			Handler: searchEntries,
		},
		{
			Tool: mcp.NewTool("faqd_compare",
				mcp.WithDescription("Line diff of the answers of two FAQ entries"),
				mcp.WithString("old", mcp.Required(), mcp.Description("First entry id")),
				mcp.WithString("new", mcp.Required(), mcp.Description("Second entry id")),
			),
			Handler: compareEntries,
		},
	}
}

func listEntries(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paths := extension.StringsArg(req, "paths")

	docs, err := extCtx.Service().ListByPaths(ctx, paths)

	log.Event("mcp:list", "list").Author("mcp").Backend(extCtx.Backend()).Paths(paths).Count(len(docs)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(docs)
}

func getEntry(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := extCtx.Service().ByID(ctx, id)

	log.Event("mcp:get", "read").Author("mcp").Backend(extCtx.Backend()).ID(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(doc)
}

func searchEntries(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text := query.ParseSearchText(raw)
	paths := extension.StringsArg(req, "paths")

	if extension.BoolArg(req, "explain", false) {
		q, err := extCtx.Service().Explain(text, paths)
		log.Event("mcp:search", "explain").Author("mcp").Query(text.String()).Paths(paths).Write(err)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(q), nil
	}

	docs, err := extCtx.Service().Search(ctx, text, paths)

	log.Event("mcp:search", "search").Author("mcp").Backend(extCtx.Backend()).Query(text.String()).Paths(paths).Count(len(docs)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(docs)
}

func compareEntries(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireString("old")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireString("new")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, err := extCtx.Service().Compare(ctx, a, b)

	log.Event("mcp:compare", "diff").Author("mcp").Backend(extCtx.Backend()).ID(a).Detail("other", b).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(r)
}
