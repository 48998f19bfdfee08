// search.go compiles query expressions into SQL and runs them.
//
// Path predicates become EXISTS lookups on document_paths, free-text
// predicates become FTS5 MATCH subqueries with a column filter, and And/Or
// map onto SQL AND/OR. All user text travels as bound parameters; FTS5
// tokens are additionally double-quoted so operators inside them are inert.

package sqliteindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
)

// pathBatch bounds the number of ids bound into one path lookup.
const pathBatch = 500

// where is a compiled SQL condition and its arguments.
type where struct {
	sql  string
	args []any
}

// Query executes q and returns documents in insertion order.
func (ix *Index) Query(ctx context.Context, q query.Expr, opts index.Options) ([]index.Document, error) {
	w, err := compile(q)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(`SELECT d.id, `)
	b.WriteString(column(opts, query.FieldQuestion))
	b.WriteString(`, `)
	b.WriteString(column(opts, query.FieldAnswer))
	b.WriteString(`, `)
	b.WriteString(column(opts, query.FieldComment))
	b.WriteString(` FROM documents d WHERE `)
	b.WriteString(w.sql)
	b.WriteString(` ORDER BY d.rowid LIMIT ?`)

	limit := -1
	if opts.Rows > 0 {
		limit = opts.Rows
	}
	args := append(w.args, limit)

	rows, err := ix.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", index.ErrUpstream, err)
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", index.ErrUpstream, err)
	}

	if opts.Wants(query.FieldPath) {
		if err := ix.loadPaths(ctx, docs); err != nil {
			return nil, fmt.Errorf("%w: %w", index.ErrUpstream, err)
		}
	}
	return docs, nil
}

// column returns the select expression for a text field, or an empty
// literal when the projection excludes it.
func column(opts index.Options, field string) string {
	if opts.Wants(field) {
		return "d." + field
	}
	return "''"
}

// loadPaths fills in the path of each document.
func (ix *Index) loadPaths(ctx context.Context, docs []index.Document) error {
	byID := make(map[string]*index.Document, len(docs))
	for i := range docs {
		byID[docs[i].ID] = &docs[i]
	}

	for start := 0; start < len(docs); start += pathBatch {
		end := min(start+pathBatch, len(docs))
		batch := docs[start:end]

		args := make([]any, len(batch))
		for i := range batch {
			args[i] = batch[i].ID
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(batch)), ",")

		rows, err := ix.db.QueryContext(ctx,
			`SELECT doc_id, segment FROM document_paths
			 WHERE doc_id IN (`+placeholders+`)
			 ORDER BY doc_id, position`, args...)
		if err != nil {
			return err
		}
		for rows.Next() {
			var id, seg string
			if err := rows.Scan(&id, &seg); err != nil {
				rows.Close()
				return fmt.Errorf("scan path: %w", err)
			}
			if d, ok := byID[id]; ok {
				d.Path = append(d.Path, seg)
			}
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func compile(e query.Expr) (where, error) {
	switch v := e.(type) {
	case nil, query.MatchAll:
		return where{sql: "1"}, nil

	case query.ID:
		return where{sql: "d.id = ?", args: []any{v.Value}}, nil

	case query.Term:
		return field(v.Field, v.Value, false)

	case query.Phrase:
		return field(v.Field, v.Value, true)

	case query.And:
		if len(v.Clauses) == 0 {
			return where{sql: "1"}, nil
		}
		return join(v.Clauses, " AND ")

	case query.Or:
		if len(v.Clauses) == 0 {
			return where{sql: "0"}, nil
		}
		return join(v.Clauses, " OR ")
	}
	return where{}, fmt.Errorf("%w: %T", index.ErrUnsupported, e)
}

// field compiles a single field predicate.
func field(name, value string, phrase bool) (where, error) {
	switch name {
	case query.FieldID:
		return where{sql: "d.id = ?", args: []any{value}}, nil
	case query.FieldPath:
		return where{
			sql:  "EXISTS (SELECT 1 FROM document_paths p WHERE p.doc_id = d.id AND p.segment = ?)",
			args: []any{value},
		}, nil
	case query.FieldQuestion, query.FieldAnswer, query.FieldComment:
		m := matchExpr(name, value, phrase)
		if m == "" {
			return where{sql: "0"}, nil
		}
		return where{
			sql:  "d.rowid IN (SELECT rowid FROM documents_fts WHERE documents_fts MATCH ?)",
			args: []any{m},
		}, nil
	}
	return where{}, fmt.Errorf("%w: field %q", index.ErrUnsupported, name)
}

func join(clauses []query.Expr, op string) (where, error) {
	parts := make([]string, len(clauses))
	var args []any
	for i, c := range clauses {
		w, err := compile(c)
		if err != nil {
			return where{}, err
		}
		parts[i] = w.sql
		args = append(args, w.args...)
	}
	return where{sql: "(" + strings.Join(parts, op) + ")", args: args}, nil
}

// matchExpr builds an FTS5 query restricted to one column. Terms are ORed
// token by token; phrases keep every token in one quoted string.
func matchExpr(column, value string, phrase bool) string {
	if phrase {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return column + " : " + quoteFTS(value)
	}
	toks := strings.Fields(value)
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = column + " : " + quoteFTS(t)
	}
	return strings.Join(parts, " OR ")
}

// quoteFTS wraps s as an FTS5 string, doubling embedded quotes.
func quoteFTS(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
