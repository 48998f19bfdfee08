// Package bleveindex is the default FAQ index backend: an on-disk bleve index
// opened read-only. Query expressions are compiled into bleve query objects
// rather than parsed from query strings, so escaping never depends on the
// bleve query-string grammar.
package bleveindex

import (
	"context"
	"errors"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	blevesearch "github.com/blevesearch/bleve/v2/search"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

// Name identifies this backend in config and logs.
const Name = "bleve"

// pageSize bounds a single search request when the caller asks for every row.
const pageSize = 1000

// searcher is the subset of bleve.Index used here.
type searcher interface {
	SearchInContext(ctx context.Context, req *bleve.SearchRequest) (*bleve.SearchResult, error)
	Close() error
}

// Index serves queries from a bleve index.
type Index struct {
	idx searcher
}

var _ index.Index = (*Index)(nil)

// Open opens the bleve index at path without taking a write lock.
func Open(path string) (*Index, error) {
	idx, err := bleve.OpenUsing(path, map[string]interface{}{"read_only": true})
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		return nil, fmt.Errorf("%w: no bleve index at %s", index.ErrUnavailable, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open bleve index %s: %w", index.ErrUnavailable, path, err)
	}
	return &Index{idx: idx}, nil
}

// New wraps an already open bleve index. The Index takes ownership and closes
// it on Close.
func New(idx bleve.Index) *Index {
	return &Index{idx: idx}
}

// Name returns "bleve".
func (ix *Index) Name() string { return Name }

// Close releases the underlying index.
func (ix *Index) Close() error {
	return ix.idx.Close()
}

// Query executes q, paging through results when opts.Rows is zero. Hits are
// ordered by score and then document id.
func (ix *Index) Query(ctx context.Context, q query.Expr, opts index.Options) ([]index.Document, error) {
	bq, err := compile(q)
	if err != nil {
		return nil, err
	}
	fields := storedFields(opts)

	docs := make([]index.Document, 0)
	from := 0
	for {
		size := pageSize
		if opts.Rows > 0 && opts.Rows-len(docs) < size {
			size = opts.Rows - len(docs)
		}

		req := bleve.NewSearchRequestOptions(bq, size, from, false)
		req.Fields = fields
		req.SortBy([]string{"-_score", "_id"})

		res, err := ix.idx.SearchInContext(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", index.ErrUpstream, err)
		}
		for _, hit := range res.Hits {
			docs = append(docs, convertHit(hit))
		}

		from += len(res.Hits)
		switch {
		case len(res.Hits) < size:
			return docs, nil
		case opts.Rows > 0 && len(docs) >= opts.Rows:
			return docs, nil
		case uint64(from) >= res.Total:
			return docs, nil
		}
	}
}

// storedFields lists the stored fields to load for a projection.
func storedFields(opts index.Options) []string {
	all := []string{query.FieldPath, query.FieldQuestion, query.FieldAnswer, query.FieldComment}
	fields := make([]string, 0, len(all))
	for _, f := range all {
		if opts.Wants(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// convertHit converts a bleve hit into a Document.
func convertHit(hit *blevesearch.DocumentMatch) index.Document {
	return index.Document{
		ID:       hit.ID,
		Path:     getStringSliceField(hit.Fields, query.FieldPath),
		Question: getStringField(hit.Fields, query.FieldQuestion),
		Answer:   getStringField(hit.Fields, query.FieldAnswer),
		Comment:  getStringField(hit.Fields, query.FieldComment),
	}
}

// getStringField extracts a string field from the fields map.
func getStringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// getStringSliceField extracts a multi-valued field. bleve returns a bare
// string when the stored array had a single element.
func getStringSliceField(fields map[string]interface{}, key string) taxonomy.Path {
	switch v := fields[key].(type) {
	case string:
		return taxonomy.Path{v}
	case []interface{}:
		out := make(taxonomy.Path, 0, len(v))
		for _, s := range v {
			if str, ok := s.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
