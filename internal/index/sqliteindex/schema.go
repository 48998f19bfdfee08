// schema.go defines the on-disk layout this backend reads.
//
// Schema files are embedded from the sql/ directory and executed in
// alphabetical order (hence the numeric prefixes). faqd itself never runs
// them against a served index; they exist so that loaders and test fixtures
// produce exactly the tables Query expects.

package sqliteindex

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed sql/*.sql
var schemas embed.FS

// tables must all exist for a database to be served.
var tables = []string{"documents", "document_paths", "documents_fts"}

// ExecEmbedded executes all .sql files from an embedded filesystem in
// alphabetical order. Each file should use IF NOT EXISTS clauses.
func ExecEmbedded(db *sql.DB, fsys embed.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read schema directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := dir + "/" + entry.Name()
		data, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := db.Exec(string(data)); err != nil {
			return fmt.Errorf("exec %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Init creates the FAQ tables in db.
func Init(db *sql.DB) error {
	return ExecEmbedded(db, schemas, "sql")
}

// checkSchema reports whether every table is present.
func checkSchema(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN (?, ?, ?)`,
		tables[0], tables[1], tables[2],
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == len(tables), nil
}
