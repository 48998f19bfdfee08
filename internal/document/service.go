// Package document provides the read operations faqd exposes over an FAQ
// index. A Service wraps an injected index.Searcher: it composes queries with
// the query package, executes them, and derives path views with the taxonomy
// package.
//
// The Service never retries, caches or wraps upstream errors; whatever the
// searcher returns is handed back unchanged so callers can test it with
// errors.Is.
package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
)

// ErrNotFound is returned when an id lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Service answers FAQ queries against a single index.
type Service struct {
	idx      index.Searcher
	composer query.Composer
	maxRows  int
}

// Option configures a Service.
type Option func(*Service)

// WithMaxRows caps the rows read when enumerating paths. Zero or negative
// means no cap.
func WithMaxRows(n int) Option {
	return func(s *Service) {
		if n < 0 {
			n = 0
		}
		s.maxRows = n
	}
}

// New returns a Service over idx.
func New(idx index.Searcher, opts ...Option) *Service {
	s := &Service{idx: idx}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Close releases the index if the Service was built over one that owns
// resources.
func (s *Service) Close() error {
	if c, ok := s.idx.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// List returns every document.
func (s *Service) List(ctx context.Context) ([]index.Document, error) {
	return s.idx.Query(ctx, query.MatchAll{}, index.Options{})
}

// ListByPaths returns documents whose path contains every segment in paths.
// No segments lists everything.
func (s *Service) ListByPaths(ctx context.Context, paths []string) ([]index.Document, error) {
	if len(paths) == 0 {
		return s.List(ctx)
	}
	q, err := s.composer.ByPaths(paths)
	if err != nil {
		return nil, err
	}
	return s.idx.Query(ctx, q, index.Options{})
}

// ByID returns the document with the given id.
func (s *Service) ByID(ctx context.Context, id string) (*index.Document, error) {
	q, err := s.composer.ByID(id)
	if err != nil {
		return nil, err
	}
	docs, err := s.idx.Query(ctx, q, index.Options{Rows: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &docs[0], nil
}

// Search runs a full-text search across question, answer and comment,
// restricted to documents under paths. Absent text with no paths lists
// everything.
func (s *Service) Search(ctx context.Context, text query.SearchText, paths []string) ([]index.Document, error) {
	q, err := s.composer.BySearch(text, paths)
	if err != nil {
		return nil, err
	}
	return s.idx.Query(ctx, q, index.Options{})
}

// Explain returns the query Search would send, rendered in Lucene syntax,
// without executing it.
func (s *Service) Explain(text query.SearchText, paths []string) (string, error) {
	q, err := s.composer.BySearch(text, paths)
	if err != nil {
		return "", err
	}
	return query.String(q), nil
}
