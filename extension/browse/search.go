// search.go implements the "faqd search" command.
//
// The text argument "null" means no text, matching every entry within the
// given paths. --explain prints the composed query instead of running it.

package browse

import (
	"fmt"

	"github.com/jpl-au/faqd/cmd"
	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/format"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/spf13/cobra"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search [text]",
		Short: "Search question, answer and comment text",
		Long: `Search FAQ entries for any of the words in text, optionally within a path.

  faqd search "visiting hours"          # any word in any text field
  faqd search parking -p Hosp -p ER     # only under Hosp and ER
  faqd search null -p Uni               # every entry under Uni
  faqd search visa --explain            # print the query only`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().StringArrayP(extension.FlagPath, "p", nil, "Path segment that must match (repeatable)")
	c.Flags().Bool(extension.FlagExplain, false, "Print the composed query without running it")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	paths, _ := c.Flags().GetStringArray(extension.FlagPath)
	explain, _ := c.Flags().GetBool(extension.FlagExplain)

	text := query.NoText()
	if len(args) > 0 {
		text = query.ParseSearchText(args[0])
	}

	if explain {
		q, err := e.svc.Explain(text, paths)
		log.Event("browse:search", "explain").
			Author(cmd.Author()).
			Query(text.String()).
			Paths(paths).
			Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"query": q})
		}
		fmt.Fprintln(cmd.Out(), q)
		return nil
	}

	docs, err := e.svc.Search(c.Context(), text, paths)

	log.Event("browse:search", "search").
		Author(cmd.Author()).
		Backend(e.backend).
		Query(text.String()).
		Paths(paths).
		Count(len(docs)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(docs)
	}
	s, _ := text.Get()
	return format.SearchResults(cmd.Out(), docs, s)
}
