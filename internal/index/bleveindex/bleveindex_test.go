package bleveindex_test

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/index/bleveindex"
	"github.com/jpl-au/faqd/internal/index/indextest"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

func TestIndex_Conformance(t *testing.T) {
	indextest.RunConformance(t, indextest.NewBleve(t, indextest.Docs()))
}

func TestOpen(t *testing.T) {
	t.Run("missing index", func(t *testing.T) {
		_, err := bleveindex.Open(filepath.Join(t.TempDir(), "none.bleve"))
		assert.ErrorIs(t, err, index.ErrUnavailable)
	})

	t.Run("on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.bleve")
		indextest.WriteBleve(t, path, indextest.Docs())

		ix, err := bleveindex.Open(path)
		require.NoError(t, err)
		defer ix.Close()

		assert.Equal(t, "bleve", ix.Name())
		docs, err := ix.Query(context.Background(), query.MatchAll{}, index.Options{})
		require.NoError(t, err)
		assert.Len(t, docs, 4)
	})
}

func TestQuery_PagesPastPageSize(t *testing.T) {
	docs := make([]index.Document, 0, 1205)
	for i := range 1205 {
		docs = append(docs, index.Document{
			ID:   "doc-" + strconv.Itoa(i),
			Path: taxonomy.Path{"Bulk", strconv.Itoa(i % 7)},
		})
	}
	ix := indextest.NewBleve(t, docs)

	got, err := ix.Query(context.Background(), query.MatchAll{}, index.Options{Fields: []string{query.FieldPath}})
	require.NoError(t, err)
	assert.Len(t, got, 1205)

	seen := make(map[string]bool, len(got))
	for _, d := range got {
		assert.False(t, seen[d.ID], "duplicate hit %s", d.ID)
		seen[d.ID] = true
	}

	limited, err := ix.Query(context.Background(), query.MatchAll{}, index.Options{Rows: 1001})
	require.NoError(t, err)
	assert.Len(t, limited, 1001)
}

func TestQuery_SingleSegmentPath(t *testing.T) {
	ix := indextest.NewBleve(t, []index.Document{{ID: "a", Path: taxonomy.Path{"Solo"}}})
	docs, err := ix.Query(context.Background(), query.MatchAll{}, index.Options{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, taxonomy.Path{"Solo"}, docs[0].Path)
}
