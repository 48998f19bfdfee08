// Package log provides centralised audit logging for faqd operations.
// Logs are stored in ~/.faqd/log/faqd-log.db and track every CLI command and
// MCP tool invocation across projects, including the exact query sent to the
// index.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("browse:get", "read").
//		Author(cmd.Author()).
//		ID(id).
//		Write(err)
//
//	log.Event("browse:search", "search").
//		Author(cmd.Author()).
//		Query(q).
//		Paths(paths).
//		Count(len(docs)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "browse:get",
// "taxonomy:tree", "mcp:faqd_search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g., "browse:get", "mcp:faqd_search"
	Author  string // who performed the action
	Action  string // verb: read, list, search, compare, etc.
	Backend string // index backend the operation ran against
	ID      string // input: document id requested
	Query   string // input: rendered query or search text
	Paths   string // input: path filter, segments joined with "/"

	// Output
	Count int // number of documents, paths or nodes returned

	// Timing
	Start int64 // unix milliseconds when Event() called
	End   int64 // unix milliseconds when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "browse:ls")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:faqd_tree")
//
// The action describes what operation was performed:
//   - "read", "list", "search", "compare", "explain", "init", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Backend records which index backend served the operation.
func (b *Builder) Backend(name string) *Builder {
	b.entry.Backend = name
	return b
}

// ID sets the document id this operation looked up.
func (b *Builder) ID(id string) *Builder {
	b.entry.ID = id
	return b
}

// Query sets the query or search text.
//
// Prefer the rendered Lucene form from Service.Explain so the log shows what
// the index received.
func (b *Builder) Query(q string) *Builder {
	b.entry.Query = q
	return b
}

// Paths sets the path filter.
func (b *Builder) Paths(paths []string) *Builder {
	b.entry.Paths = strings.Join(paths, "/")
	return b
}

// Count sets the size of the result.
func (b *Builder) Count(n int) *Builder {
	b.entry.Count = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// flags, output format, the second id of a comparison, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// Example:
//
//	doc, err := svc.ByID(ctx, id)
//	log.Event("browse:get", "read").ID(id).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the .faqd directory, or the Solr
// core URL for remote indexes.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
