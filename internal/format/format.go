// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// querying while this package handles presentation concerns like column
// alignment, tree rendering, and colourised output.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/faqd/internal/diff"
	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

// maxWidth is where questions and snippets are cut in single-line output.
const maxWidth = 80

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// oneLine collapses newlines so multi-line text stays in its column.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// List prints documents in simple list format: id then path.
func List(w io.Writer, docs []index.Document) error {
	for _, doc := range docs {
		fmt.Fprintf(w, "%s  %s\n", doc.ID, doc.Path)
	}
	return nil
}

// Long prints documents with aligned id and path columns followed by the
// question.
func Long(w io.Writer, docs []index.Document) error {
	if len(docs) == 0 {
		return nil
	}

	maxID, maxPath := 2, 4 // minimum "ID", "PATH"
	for _, doc := range docs {
		maxID = max(maxID, len(doc.ID))
		maxPath = max(maxPath, len(doc.Path.String()))
	}

	fmt.Fprintf(w, "%-*s  %-*s  %s\n", maxID, "ID", maxPath, "PATH", "QUESTION")
	for _, doc := range docs {
		q := doc.Question
		if q == "" {
			q = "-"
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", maxID, doc.ID, maxPath, doc.Path, truncate(oneLine(q), maxWidth))
	}
	return nil
}

// Paths prints one path per line, segments joined with "/".
func Paths(w io.Writer, paths []taxonomy.Path) error {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	return nil
}

// Segments prints one segment per line.
func Segments(w io.Writer, segments []string) error {
	for _, s := range segments {
		fmt.Fprintln(w, s)
	}
	return nil
}

// Tree prints a taxonomy forest with box-drawing connectors. Nodes with
// children carry a trailing "/". Children print in the order they were
// first seen.
func Tree(w io.Writer, nodes []*taxonomy.Node) error {
	var printNodes func(ns []*taxonomy.Node, prefix string)
	printNodes = func(ns []*taxonomy.Node, prefix string) {
		for i, n := range ns {
			last := i == len(ns)-1

			connector := "├── "
			if last {
				connector = "└── "
			}
			suffix := ""
			if len(n.Nodes) > 0 {
				suffix = "/"
			}
			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, n.Label, suffix)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}
			printNodes(n.Nodes, pfx)
		}
	}
	printNodes(nodes, "")
	return nil
}

// Document renders one FAQ entry as markdown.
func Document(doc index.Document) string {
	var b strings.Builder
	q := doc.Question
	if q == "" {
		q = doc.ID
	}
	fmt.Fprintf(&b, "# %s\n\n", q)
	if len(doc.Path) > 0 {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(doc.Path, " › "))
	}
	if doc.Answer != "" {
		b.WriteString(strings.TrimRight(doc.Answer, "\n"))
		b.WriteString("\n\n")
	}
	if doc.Comment != "" {
		for _, line := range strings.Split(strings.TrimRight(doc.Comment, "\n"), "\n") {
			b.WriteString("> " + line + "\n")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "`%s`\n", doc.ID)
	return b.String()
}

// Raw prints the fields of one document as labelled plain text.
func Raw(w io.Writer, doc index.Document) error {
	fmt.Fprintf(w, "id: %s\n", doc.ID)
	fmt.Fprintf(w, "path: %s\n", doc.Path)
	fmt.Fprintf(w, "question: %s\n", doc.Question)
	fmt.Fprintf(w, "answer: %s\n", doc.Answer)
	fmt.Fprintf(w, "comment: %s\n", doc.Comment)
	return nil
}

// SearchResults prints each hit with the first field line containing a
// search token.
func SearchResults(w io.Writer, docs []index.Document, text string) error {
	tokens := strings.Fields(strings.ToLower(text))
	for _, doc := range docs {
		field, line := snippet(doc, tokens)
		if field == "" {
			fmt.Fprintf(w, "%s  %s\n", doc.ID, doc.Path)
			continue
		}
		fmt.Fprintf(w, "%s  %s  %s: %s\n", doc.ID, doc.Path, field, truncate(line, maxWidth))
	}
	return nil
}

// snippet finds the first line of question, answer or comment that contains
// any token, case-insensitively.
func snippet(doc index.Document, tokens []string) (field, line string) {
	if len(tokens) == 0 {
		return "", ""
	}
	fields := []struct{ name, text string }{
		{"question", doc.Question},
		{"answer", doc.Answer},
		{"comment", doc.Comment},
	}
	for _, f := range fields {
		for _, l := range strings.Split(f.text, "\n") {
			lower := strings.ToLower(l)
			for _, t := range tokens {
				if strings.Contains(lower, t) {
					return f.name, strings.TrimSpace(l)
				}
			}
		}
	}
	return "", ""
}

// Diff prints a comparison, or a note when the answers are identical.
func Diff(w io.Writer, r diff.Result, colour bool) error {
	if r.Empty() {
		fmt.Fprintf(w, "%s and %s have identical answers\n", r.Old, r.New)
		return nil
	}
	fmt.Fprint(w, r.Format(colour))
	return nil
}
