package document

import (
	"context"

	"github.com/jpl-au/faqd/internal/diff"
)

// Compare diffs the answers of two documents, labelled by their ids.
func (s *Service) Compare(ctx context.Context, idA, idB string) (diff.Result, error) {
	a, err := s.ByID(ctx, idA)
	if err != nil {
		return diff.Result{}, err
	}
	b, err := s.ByID(ctx, idB)
	if err != nil {
		return diff.Result{}, err
	}
	return diff.Compute(a.Answer, b.Answer, a.ID, b.ID), nil
}
