// mcp.go defines types for MCP tool registration by extensions, plus the
// argument helpers their handlers share.
//
// Argument extraction is permissive: a missing or mistyped optional argument
// yields the caller's default instead of an error. LLM clients often omit
// optional arguments or send them in unexpected shapes.

package extension

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
// The Context provides access to the read service.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// StringArg returns a string argument, or def when it is missing.
func StringArg(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// StringsArg returns a string array argument. Non-string elements are
// skipped. Returns nil when the argument is absent.
func StringsArg(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// BoolArg returns a boolean argument, or def when it is missing or not a
// JSON boolean.
func BoolArg(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// JSONResult wraps v as indented JSON text. Marshal failures become tool
// errors so every failure reaches the client the same way.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
