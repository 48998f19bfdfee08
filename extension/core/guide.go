// guide.go implements the "faqd guide" command and the faqd_guide MCP tool.
//
// Guides are embedded in the binary via the guide package. Terminal output
// gets glamour rendering; pipe/redirect gets raw markdown for LLM context
// loading.

package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/guide"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the faqd usage guide",
		Long: `Outputs the faqd guide for LLMs and humans.

  faqd guide           # main guide
  faqd guide search    # search and the "null" text
  faqd guide backends  # bleve, SQLite and Solr setup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			log.Event("core:guide", "read").Author(cmd.Author()).Detail("topic", name).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}

func guideTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("faqd_guide",
			mcp.WithDescription("Get help content for faqd commands and tools"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'search', 'backends') or empty for the main guide")),
		),
		Handler: readGuide,
	}
}

func readGuide(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := extension.StringArg(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
