// Package index defines the outbound contract to the FAQ search index and the
// document shape it returns. Backends live in subpackages (bleveindex, solr,
// sqliteindex); consumers depend only on the interfaces here.
//
// The contract has a single operation: execute a query expression and return
// the matching documents, optionally restricted to a field projection and a
// maximum row count. Backends never retry and never impose a timeout of their
// own; ctx is passed to the engine unchanged.
package index

import (
	"context"
	"errors"

	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

var (
	// ErrUnavailable indicates the index could not be opened or reached.
	ErrUnavailable = errors.New("index unavailable")
	// ErrUpstream indicates the index engine rejected or failed a request.
	ErrUpstream = errors.New("index request failed")
	// ErrUnsupported indicates a backend cannot compile an expression node.
	ErrUnsupported = errors.New("unsupported query expression")
)

// Document is one FAQ entry as stored in the index.
type Document struct {
	ID       string        `json:"id"`
	Path     taxonomy.Path `json:"path"`
	Question string        `json:"question,omitempty"`
	Answer   string        `json:"answer,omitempty"`
	Comment  string        `json:"comment,omitempty"`
}

// Options restricts a query's result set.
type Options struct {
	// Fields is a projection. Empty means every field. The id is always
	// returned.
	Fields []string
	// Rows is the maximum number of documents. Zero means no limit.
	Rows int
}

// Wants reports whether field is part of the projection.
func (o Options) Wants(field string) bool {
	if len(o.Fields) == 0 || field == query.FieldID {
		return true
	}
	for _, f := range o.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Searcher executes query expressions.
type Searcher interface {
	Query(ctx context.Context, q query.Expr, opts Options) ([]Document, error)
}

// Index is a Searcher that owns resources.
type Index interface {
	Searcher
	// Name identifies the backend, e.g. "bleve".
	Name() string
	Close() error
}

// Paths extracts the path of each document, in result order.
func Paths(docs []Document) []taxonomy.Path {
	out := make([]taxonomy.Path, len(docs))
	for i := range docs {
		out[i] = docs[i].Path
	}
	return out
}
