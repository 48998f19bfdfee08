package indextest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

// RunConformance checks that s, loaded with Docs, answers every expression
// shape the composer produces the same way.
func RunConformance(t *testing.T, s index.Searcher) {
	t.Helper()
	ctx := context.Background()
	var c query.Composer

	run := func(t *testing.T, e query.Expr, opts index.Options) []index.Document {
		t.Helper()
		docs, err := s.Query(ctx, e, opts)
		require.NoError(t, err)
		return docs
	}
	ids := func(docs []index.Document) []string {
		out := make([]string, len(docs))
		for i, d := range docs {
			out[i] = d.ID
		}
		return out
	}
	mustExpr := func(t *testing.T) func(query.Expr, error) query.Expr {
		return func(e query.Expr, err error) query.Expr {
			t.Helper()
			require.NoError(t, err)
			return e
		}
	}

	t.Run("match all", func(t *testing.T) {
		docs := run(t, query.MatchAll{}, index.Options{})
		assert.ElementsMatch(t, []string{"er-1", "er-2", "icu-1", "cs-1"}, ids(docs))
		for _, d := range docs {
			if d.ID == "er-2" {
				assert.Equal(t, taxonomy.Path{"Hosp", "ER"}, d.Path)
				assert.Equal(t, "Where do I park?", d.Question)
				assert.Equal(t, "Parking fees apply after two hours.", d.Comment)
			}
		}
	})

	t.Run("by id", func(t *testing.T) {
		e := mustExpr(t)(c.ByID("cs-1"))
		docs := run(t, e, index.Options{})
		require.Len(t, docs, 1)
		assert.Equal(t, "cs-1", docs[0].ID)
		assert.Equal(t, taxonomy.Path{"Uni", "CS"}, docs[0].Path)
		assert.Contains(t, docs[0].Answer, "international office")
	})

	t.Run("by missing id", func(t *testing.T) {
		e := mustExpr(t)(c.ByID("nope"))
		assert.Empty(t, run(t, e, index.Options{}))
	})

	t.Run("by one path", func(t *testing.T) {
		e := mustExpr(t)(c.ByPaths([]string{"Hosp"}))
		assert.ElementsMatch(t, []string{"er-1", "er-2", "icu-1"}, ids(run(t, e, index.Options{})))
	})

	t.Run("by two paths", func(t *testing.T) {
		e := mustExpr(t)(c.ByPaths([]string{"Hosp", "ER"}))
		assert.ElementsMatch(t, []string{"er-1", "er-2"}, ids(run(t, e, index.Options{})))
	})

	t.Run("path match is exact", func(t *testing.T) {
		e := mustExpr(t)(c.ByPaths([]string{"hosp"}))
		assert.Empty(t, run(t, e, index.Options{}))
	})

	t.Run("search text", func(t *testing.T) {
		e := mustExpr(t)(c.BySearch(query.Text("visa"), nil))
		assert.Equal(t, []string{"cs-1"}, ids(run(t, e, index.Options{})))
	})

	t.Run("search comment field", func(t *testing.T) {
		e := mustExpr(t)(c.BySearch(query.Text("fees"), nil))
		assert.Equal(t, []string{"er-2"}, ids(run(t, e, index.Options{})))
	})

	t.Run("search tokens are ORed", func(t *testing.T) {
		e := mustExpr(t)(c.BySearch(query.Text("flowers parking"), nil))
		assert.ElementsMatch(t, []string{"icu-1", "er-2"}, ids(run(t, e, index.Options{})))
	})

	t.Run("search text within path", func(t *testing.T) {
		e := mustExpr(t)(c.BySearch(query.Text("visa"), []string{"Hosp"}))
		assert.Empty(t, run(t, e, index.Options{}))
	})

	t.Run("search absent text within path", func(t *testing.T) {
		e := mustExpr(t)(c.BySearch(query.NoText(), []string{"Uni"}))
		assert.Equal(t, []string{"cs-1"}, ids(run(t, e, index.Options{})))
	})

	t.Run("projection", func(t *testing.T) {
		docs := run(t, query.MatchAll{}, index.Options{Fields: []string{query.FieldPath}})
		require.Len(t, docs, 4)
		for _, d := range docs {
			assert.NotEmpty(t, d.ID)
			assert.NotEmpty(t, d.Path)
			assert.Empty(t, d.Question)
			assert.Empty(t, d.Answer)
		}
	})

	t.Run("row limit", func(t *testing.T) {
		assert.Len(t, run(t, query.MatchAll{}, index.Options{Rows: 2}), 2)
	})

	t.Run("empty groups", func(t *testing.T) {
		assert.Len(t, run(t, query.And{}, index.Options{}), 4)
		assert.Empty(t, run(t, query.Or{}, index.Options{}))
	})
}
