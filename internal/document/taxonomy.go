// taxonomy.go derives path views from the whole index. Every view starts
// from one projected read of the path field, so a view costs a single index
// round trip however it is shaped.

package document

import (
	"context"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

// UniquePaths returns each distinct document path once, in first-seen order.
func (s *Service) UniquePaths(ctx context.Context) ([]taxonomy.Path, error) {
	docs, err := s.idx.Query(ctx, query.MatchAll{}, index.Options{
		Fields: []string{query.FieldPath},
		Rows:   s.maxRows,
	})
	if err != nil {
		return nil, err
	}
	return taxonomy.UniquePaths(index.Paths(docs)), nil
}

// TopLevelSegments returns the distinct first segments of all paths.
func (s *Service) TopLevelSegments(ctx context.Context) ([]string, error) {
	paths, err := s.UniquePaths(ctx)
	if err != nil {
		return nil, err
	}
	return taxonomy.TopLevelSegments(paths), nil
}

// SubPathsUnder returns the remainder of every path whose first segment is
// top.
func (s *Service) SubPathsUnder(ctx context.Context, top string) ([]taxonomy.Path, error) {
	paths, err := s.UniquePaths(ctx)
	if err != nil {
		return nil, err
	}
	return taxonomy.SubPathsUnder(paths, top), nil
}

// Tree returns the taxonomy tree of all paths.
func (s *Service) Tree(ctx context.Context) ([]*taxonomy.Node, error) {
	paths, err := s.UniquePaths(ctx)
	if err != nil {
		return nil, err
	}
	return taxonomy.BuildTree(paths), nil
}
