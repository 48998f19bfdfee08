package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a fresh database for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	Close()
	tmpDir := t.TempDir()
	orig := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/test/project/.faqd")

		Log(Entry{
			Source:  "browse:get",
			Author:  "test-user",
			Action:  "read",
			Backend: "bleve",
			ID:      "er-1",
			Count:   1,
			Success: true,
		})

		db := openDB(t)
		var source, action, backend, id, project string
		var count, success int
		err := db.QueryRow(`SELECT source, action, backend, doc_id, project, count, success
			FROM log ORDER BY id DESC LIMIT 1`).
			Scan(&source, &action, &backend, &id, &project, &count, &success)
		require.NoError(t, err)
		assert.Equal(t, "browse:get", source)
		assert.Equal(t, "read", action)
		assert.Equal(t, "bleve", backend)
		assert.Equal(t, "er-1", id)
		assert.Equal(t, hash("/test/project/.faqd"), project)
		assert.Equal(t, 1, count)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Log(Entry{
			Source:  "browse:get",
			Action:  "read",
			ID:      "missing",
			Success: false,
			Error:   "document not found: missing",
		})

		db := openDB(t)
		var success int
		var errMsg string
		err := db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "document not found: missing", errMsg)
	})

	t.Run("log with detail", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Log(Entry{
			Source:  "browse:search",
			Action:  "search",
			Success: true,
			Detail:  map[string]any{"explain": true, "rows": 42},
		})

		db := openDB(t)
		var detail string
		err := db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "explain")
		assert.Contains(t, detail, "42")
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project/.faqd")
	h2 := hash("/home/user/project/.faqd")
	h3 := hash("/home/user/other/.faqd")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	orig := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = orig }()

	assert.Equal(t, filepath.Join(home, ".faqd", "log", "faqd-log.db"), DBPath())
}

func TestBuilder(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())
	SetProject("/test/project/.faqd")

	t.Run("fluent API success", func(t *testing.T) {
		Event("browse:search", "search").
			Author("test-user").
			Backend("sqlite").
			Query(`question:visa OR answer:visa OR comment:visa`).
			Paths([]string{"Uni", "CS"}).
			Count(3).
			Write(nil)

		db := openDB(t)
		var author, query, paths string
		var count, success int
		var start, end int64
		err := db.QueryRow(`SELECT author, query, paths, count, success, start, end
			FROM log ORDER BY id DESC LIMIT 1`).
			Scan(&author, &query, &paths, &count, &success, &start, &end)
		require.NoError(t, err)
		assert.Equal(t, "test-user", author)
		assert.Equal(t, "question:visa OR answer:visa OR comment:visa", query)
		assert.Equal(t, "Uni/CS", paths)
		assert.Equal(t, 3, count)
		assert.Equal(t, 1, success)
		assert.LessOrEqual(t, start, end)
	})

	t.Run("fluent API failure", func(t *testing.T) {
		Event("mcp:faqd_get", "read").
			Author("mcp").
			ID("nope").
			Detail("format", "json").
			Write(errors.New("index unavailable"))

		db := openDB(t)
		var success int
		var errMsg, id sql.NullString
		err := db.QueryRow("SELECT success, error, doc_id FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &id)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "index unavailable", errMsg.String)
		assert.Equal(t, "nope", id.String)
	})

	t.Run("unset fields are null", func(t *testing.T) {
		Event("core:version", "read").Write(nil)

		db := openDB(t)
		var author, id, query sql.NullString
		err := db.QueryRow("SELECT author, doc_id, query FROM log ORDER BY id DESC LIMIT 1").
			Scan(&author, &id, &query)
		require.NoError(t, err)
		assert.False(t, author.Valid)
		assert.False(t, id.Valid)
		assert.False(t, query.Valid)
	})
}
