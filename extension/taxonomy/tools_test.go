package taxonomy

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/config"
	"github.com/jpl-au/faqd/internal/document"
	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/index/indextest"
	"github.com/jpl-au/faqd/internal/query"
)

type failing struct{}

func (failing) Query(context.Context, query.Expr, index.Options) ([]index.Document, error) {
	return nil, index.ErrUpstream
}

func call(t *testing.T, extCtx extension.Context, name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	for _, tool := range tools() {
		if tool.Tool.Name != name {
			continue
		}
		var req mcp.CallToolRequest
		req.Params.Name = name
		req.Params.Arguments = args
		res, err := tool.Handler(context.Background(), extCtx, req)
		require.NoError(t, err)
		require.Len(t, res.Content, 1)
		c, ok := res.Content[0].(mcp.TextContent)
		require.True(t, ok)
		return res, c.Text
	}
	t.Fatalf("tool %s not registered", name)
	return nil, ""
}

func TestTools(t *testing.T) {
	ix := indextest.NewBleve(t, indextest.Docs())
	extCtx := extension.NewContext(document.New(ix), &config.Config{}, ix.Name())

	_, out := call(t, extCtx, "faqd_paths", nil)
	var paths [][]string
	require.NoError(t, json.Unmarshal([]byte(out), &paths))
	assert.ElementsMatch(t, [][]string{{"Hosp", "ER"}, {"Hosp", "ICU"}, {"Uni", "CS"}}, paths)

	_, out = call(t, extCtx, "faqd_tops", nil)
	var tops []string
	require.NoError(t, json.Unmarshal([]byte(out), &tops))
	assert.ElementsMatch(t, []string{"Hosp", "Uni"}, tops)

	_, out = call(t, extCtx, "faqd_subpaths", map[string]any{"top": "Uni"})
	var subs [][]string
	require.NoError(t, json.Unmarshal([]byte(out), &subs))
	assert.Equal(t, [][]string{{"CS"}}, subs)

	res, _ := call(t, extCtx, "faqd_subpaths", nil)
	assert.True(t, res.IsError)

	_, out = call(t, extCtx, "faqd_tree", nil)
	var nodes []struct {
		Label string   `json:"label"`
		Path  []string `json:"path"`
		Nodes []struct {
			Label string          `json:"label"`
			Path  []string        `json:"path"`
			Nodes json.RawMessage `json:"nodes"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		if n.Label != "Uni" {
			continue
		}
		assert.Equal(t, []string{"Uni"}, n.Path)
		require.Len(t, n.Nodes, 1)
		assert.Equal(t, []string{"Uni", "CS"}, n.Nodes[0].Path)
		assert.JSONEq(t, "[]", string(n.Nodes[0].Nodes))
	}
}

func TestTools_UpstreamError(t *testing.T) {
	extCtx := extension.NewContext(document.New(failing{}), &config.Config{}, "solr")

	for _, name := range []string{"faqd_paths", "faqd_tops", "faqd_tree"} {
		res, out := call(t, extCtx, name, nil)
		assert.True(t, res.IsError, name)
		assert.Contains(t, out, index.ErrUpstream.Error(), name)
	}

	res, _ := call(t, extCtx, "faqd_subpaths", map[string]any{"top": "Hosp"})
	assert.True(t, res.IsError)
}
