// Package service defines the shared interface for FAQ read operations.
// Commands, extensions and MCP tools depend on this interface rather than on
// document.Service, so they can be tested against fakes.
package service

import (
	"context"

	"github.com/jpl-au/faqd/internal/diff"
	"github.com/jpl-au/faqd/internal/document"
	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

// Service defines every read operation faqd offers.
//
// Obtain one with document.New over an opened index:
//
//	ix, err := backend.Open(ctx, dir, "", cfg)
//	if err != nil {
//	    return err
//	}
//	svc := document.New(ix, document.WithMaxRows(cfg.MaxRows()))
//	defer svc.Close()
//	docs, err := svc.Search(ctx, query.Text("visa"), []string{"Uni"})
//
// Errors from the index are returned unchanged. Input that cannot be
// expressed as a query fails with query.ErrMalformedInput before the index
// is contacted.
type Service interface {
	// Close releases the index.
	Close() error

	// List returns every document.
	List(ctx context.Context) ([]index.Document, error)

	// ListByPaths returns documents whose path contains every segment.
	// No segments lists everything.
	ListByPaths(ctx context.Context, paths []string) ([]index.Document, error)

	// ByID returns one document. Returns document.ErrNotFound when no
	// document has that id.
	ByID(ctx context.Context, id string) (*index.Document, error)

	// Search runs full-text search over question, answer and comment,
	// restricted to paths. Absent text matches every document.
	Search(ctx context.Context, text query.SearchText, paths []string) ([]index.Document, error)

	// Explain renders the query Search would run, without running it.
	Explain(text query.SearchText, paths []string) (string, error)

	// UniquePaths returns each distinct document path once.
	UniquePaths(ctx context.Context) ([]taxonomy.Path, error)

	// TopLevelSegments returns the distinct first path segments.
	TopLevelSegments(ctx context.Context) ([]string, error)

	// SubPathsUnder returns the remainders of paths starting with top.
	SubPathsUnder(ctx context.Context, top string) ([]taxonomy.Path, error)

	// Tree returns the path taxonomy as a forest.
	Tree(ctx context.Context) ([]*taxonomy.Node, error)

	// Compare diffs the answers of two documents.
	Compare(ctx context.Context, idA, idB string) (diff.Result, error)
}

var _ Service = (*document.Service)(nil)
