// Package indextest builds populated FAQ indexes for tests. faqd never
// writes to an index, so this package is the only place documents are
// loaded, and only test code imports it.
package indextest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/index/bleveindex"
	"github.com/jpl-au/faqd/internal/index/sqliteindex"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

// Docs returns a small FAQ corpus spanning two institutes.
func Docs() []index.Document {
	return []index.Document{
		{
			ID:       "er-1",
			Path:     taxonomy.Path{"Hosp", "ER"},
			Question: "What are the visiting hours?",
			Answer:   "Visitors are welcome **any time** in the emergency ward.",
		},
		{
			ID:       "er-2",
			Path:     taxonomy.Path{"Hosp", "ER"},
			Question: "Where do I park?",
			Answer:   "Use the multi-storey car park on level two.",
			Comment:  "Parking fees apply after two hours.",
		},
		{
			ID:       "icu-1",
			Path:     taxonomy.Path{"Hosp", "ICU"},
			Question: "Can I bring flowers?",
			Answer:   "Flowers are not allowed in intensive care.",
		},
		{
			ID:       "cs-1",
			Path:     taxonomy.Path{"Uni", "CS"},
			Question: "How do I apply for a student visa?",
			Answer:   "Apply through the international office before enrolment.",
			Comment:  "Visa processing takes six weeks.",
		},
	}
}

// fields converts a document into the map bleve indexes.
func fields(d index.Document) map[string]interface{} {
	path := make([]interface{}, len(d.Path))
	for i, s := range d.Path {
		path[i] = s
	}
	return map[string]interface{}{
		"path":     path,
		"question": d.Question,
		"answer":   d.Answer,
		"comment":  d.Comment,
	}
}

func loadBleve(t *testing.T, idx bleve.Index, docs []index.Document) {
	t.Helper()
	b := idx.NewBatch()
	for _, d := range docs {
		require.NoError(t, b.Index(d.ID, fields(d)))
	}
	require.NoError(t, idx.Batch(b))
}

// NewBleve returns an in-memory bleve index holding docs.
func NewBleve(t *testing.T, docs []index.Document) *bleveindex.Index {
	t.Helper()
	idx, err := bleve.NewMemOnly(bleveindex.Mapping())
	require.NoError(t, err)
	loadBleve(t, idx, docs)

	ix := bleveindex.New(idx)
	t.Cleanup(func() { ix.Close() })
	return ix
}

// WriteBleve creates an on-disk bleve index at path holding docs and closes
// it, leaving it ready for bleveindex.Open.
func WriteBleve(t *testing.T, path string, docs []index.Document) {
	t.Helper()
	idx, err := bleve.New(path, bleveindex.Mapping())
	require.NoError(t, err)
	loadBleve(t, idx, docs)
	require.NoError(t, idx.Close())
}

// WriteSQLite creates a SQLite index at path holding docs.
func WriteSQLite(t *testing.T, path string, docs []index.Document) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, sqliteindex.Init(db))

	tx, err := db.Begin()
	require.NoError(t, err)
	for _, d := range docs {
		_, err := tx.Exec(`INSERT INTO documents (id, question, answer, comment) VALUES (?, ?, ?, ?)`,
			d.ID, d.Question, d.Answer, d.Comment)
		require.NoError(t, err)
		for i, seg := range d.Path {
			_, err := tx.Exec(`INSERT INTO document_paths (doc_id, position, segment) VALUES (?, ?, ?)`,
				d.ID, i, seg)
			require.NoError(t, err)
		}
	}
	require.NoError(t, tx.Commit())
}

// NewSQLite returns an opened SQLite index in a temp dir holding docs.
func NewSQLite(t *testing.T, docs []index.Document) *sqliteindex.Index {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqd.db")
	WriteSQLite(t, path, docs)

	ix, err := sqliteindex.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}
