// Package sqliteindex serves FAQ documents from a SQLite database with an
// FTS5 full-text table. It is the embedded alternative to a bleve or Solr
// index: a single file that any loader can produce with the schema in sql/.
//
// The database is opened with query_only set, so no statement issued through
// this package can modify it.
package sqliteindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jpl-au/faqd/internal/index"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// Name identifies this backend in config and logs.
const Name = "sqlite"

// Index serves queries from a SQLite database.
type Index struct {
	db *sql.DB
}

var _ index.Index = (*Index)(nil)

// Open opens the database at path for reading. It fails with
// index.ErrUnavailable when the file or the FAQ tables are missing.
func Open(ctx context.Context, path string) (*Index, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: no sqlite index at %s", index.ErrUnavailable, path)
	}

	// busy_timeout lets reads wait out a loader holding the write lock.
	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: open database %s: %w", index.ErrUnavailable, path, err)
	}

	ok, err := checkSchema(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: read schema %s: %w", index.ErrUnavailable, path, err)
	}
	if !ok {
		db.Close()
		return nil, fmt.Errorf("%w: %s has no FAQ tables", index.ErrUnavailable, path)
	}
	return &Index{db: db}, nil
}

// New wraps an open database. The Index takes ownership and closes it on
// Close.
func New(db *sql.DB) *Index {
	return &Index{db: db}
}

// Name returns "sqlite".
func (ix *Index) Name() string { return Name }

// Close releases the database connection.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDoc extracts a Document from a row of id, question, answer, comment.
func scanDoc(sc scanner) (index.Document, error) {
	var d index.Document
	err := sc.Scan(&d.ID, &d.Question, &d.Answer, &d.Comment)
	return d, err
}

// scanDocuments collects every row into a slice.
func scanDocuments(rows *sql.Rows) ([]index.Document, error) {
	docs := make([]index.Document, 0)
	for rows.Next() {
		d, err := scanDoc(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
