package sqliteindex_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/index/indextest"
	"github.com/jpl-au/faqd/internal/index/sqliteindex"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

func TestIndex_Conformance(t *testing.T) {
	indextest.RunConformance(t, indextest.NewSQLite(t, indextest.Docs()))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := sqliteindex.Open(ctx, filepath.Join(t.TempDir(), "none.db"))
		assert.ErrorIs(t, err, index.ErrUnavailable)
	})

	t.Run("database without tables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.db")
		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		_, err = db.Exec(`CREATE TABLE other (x INTEGER)`)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		_, err = sqliteindex.Open(ctx, path)
		assert.ErrorIs(t, err, index.ErrUnavailable)
	})

	t.Run("does not create files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "never.db")
		_, _ = sqliteindex.Open(ctx, path)
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestIndex_ReadOnly(t *testing.T) {
	ix := indextest.NewSQLite(t, indextest.Docs())
	assert.Equal(t, "sqlite", ix.Name())

	// The connection is query_only; a write through the same driver settings
	// must fail.
	path := filepath.Join(t.TempDir(), "ro.db")
	indextest.WriteSQLite(t, path, indextest.Docs())
	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`DELETE FROM documents`)
	assert.Error(t, err)
}

func TestQuery_PathOrder(t *testing.T) {
	ix := indextest.NewSQLite(t, []index.Document{
		{ID: "deep", Path: taxonomy.Path{"Z", "A", "M", "B"}},
	})
	docs, err := ix.Query(context.Background(), query.MatchAll{}, index.Options{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, taxonomy.Path{"Z", "A", "M", "B"}, docs[0].Path)
}

func TestQuery_FTSOperatorsAreInert(t *testing.T) {
	ix := indextest.NewSQLite(t, indextest.Docs())
	var c query.Composer

	// NEAR, OR and a bare quote would be FTS5 syntax if passed through.
	for _, text := range []string{`visa OR`, `NEAR(visa`, `"visa`, `visa*`} {
		e, err := c.BySearch(query.Text(text), nil)
		require.NoError(t, err)
		_, err = ix.Query(context.Background(), e, index.Options{})
		assert.NoError(t, err, text)
	}
}

func TestCompile_Phrase(t *testing.T) {
	ix := indextest.NewSQLite(t, indextest.Docs())

	docs, err := ix.Query(context.Background(),
		query.Phrase{Field: query.FieldAnswer, Value: "intensive care"}, index.Options{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "icu-1", docs[0].ID)

	_, err = ix.Query(context.Background(), query.Term{Field: "unknown", Value: "x"}, index.Options{})
	assert.ErrorIs(t, err, index.ErrUnsupported)
}
