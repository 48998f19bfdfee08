// Package repo provides workspace initialisation and discovery for faqd.
//
// A faqd workspace is a .faqd directory holding local config and, for the
// embedded backends, the FAQ index itself (a bleve directory or a SQLite
// file). faqd never builds an index; init only prepares the directory an
// indexer writes into.
//
// The discovery algorithm mirrors git's approach: starting from the current
// directory, walk up until a .faqd directory is found, or the filesystem
// root is reached.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/faqd/internal/config"
)

const (
	// Dir is the directory name for the faqd workspace.
	Dir = ".faqd"
	// BleveFile is the default bleve index directory name.
	BleveFile = "index.bleve"
	// SQLiteFile is the default SQLite index filename.
	SQLiteFile = "faqd.db"
)

// ErrNotInitialised is returned when no faqd workspace is found.
var ErrNotInitialised = errors.New("faqd not initialised (run 'faqd init')")

// IndexFileName returns the index filename for a backend and index name.
// Empty name returns the backend default ("index.bleve" or "faqd.db").
// A name like "uni" returns "index-uni.bleve" or "faqd-uni.db".
// A name already carrying the backend's extension is returned as-is.
func IndexFileName(backend, name string) string {
	prefix, ext, def := "index-", ".bleve", BleveFile
	if backend == config.BackendSQLite {
		prefix, ext, def = "faqd-", ".db", SQLiteFile
	}
	if name == "" {
		return def
	}
	if strings.HasSuffix(name, ext) {
		return name
	}
	return prefix + name + ext
}

// IndexPath resolves where an embedded index lives. A configured path wins
// and is taken relative to dir unless absolute; otherwise the name selects a
// file inside dir.
func IndexPath(dir, backend, configured, name string) string {
	if configured != "" && name == "" {
		if filepath.IsAbs(configured) {
			return configured
		}
		return filepath.Join(dir, configured)
	}
	return filepath.Join(dir, IndexFileName(backend, name))
}

// Init creates the .faqd directory under dir (or the current directory)
// with a .gitignore for local config.
//
// Why init does not write config or an index: following the git model, init
// only creates structure. Settings are managed via "faqd config" and the
// index is produced by whatever feeds the search engine.
//
// Parameters:
//   - force: rewrite the .gitignore of an existing workspace
//   - dir: target directory (empty for current directory)
//   - local: mark the default embedded indexes as local (gitignored)
func Init(force bool, dir string, local bool) error {
	if dir == "" {
		dir = "."
	}
	faqdDir := filepath.Join(dir, Dir)

	if info, err := os.Stat(faqdDir); err == nil && info.IsDir() && !force {
		gitignore := filepath.Join(faqdDir, ".gitignore")
		if _, err := os.Stat(gitignore); err == nil {
			return fmt.Errorf("%s already exists (use --force to reinitialise)", faqdDir)
		}
	}

	if err := os.MkdirAll(faqdDir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	gitignore := filepath.Join(faqdDir, ".gitignore")
	if _, err := os.Stat(gitignore); os.IsNotExist(err) || force {
		s := `# faqd - ignore local config
# Index files are shared unless marked local with 'faqd index --local'
config.yaml
`
		if err := os.WriteFile(gitignore, []byte(s), 0644); err != nil {
			return fmt.Errorf("write gitignore: %w", err)
		}
	}

	if local {
		for _, f := range []string{BleveFile, SQLiteFile} {
			if err := Ignore(f, faqdDir); err != nil {
				return fmt.Errorf("ignore index: %w", err)
			}
		}
	}
	return nil
}

// DiscoverDir finds the .faqd directory, walking up the tree from the
// current directory. Returns the full path to the .faqd directory.
func DiscoverDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		faqdDir := filepath.Join(dir, Dir)
		if info, err := os.Stat(faqdDir); err == nil && info.IsDir() {
			return faqdDir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInitialised
		}
		dir = parent
	}
}

// Resolve returns the .faqd directory for an explicit project dir, or
// discovers one when dir is empty.
func Resolve(dir string) (string, error) {
	if dir == "" {
		return DiscoverDir()
	}
	faqdDir := filepath.Join(dir, Dir)
	if info, err := os.Stat(faqdDir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w in %s", ErrNotInitialised, dir)
	}
	return faqdDir, nil
}

// IndexInfo describes an embedded index found in a .faqd directory.
type IndexInfo struct {
	Name    string // Short name (empty for default, "uni" for index-uni.bleve)
	File    string // Filename (index.bleve, faqd-uni.db)
	Path    string // Full path
	Backend string // bleve or sqlite
	Local   bool   // True if gitignored
}

// ListIndexes returns the embedded indexes in the .faqd directory with their
// status. If dir is empty, discovers the .faqd directory.
func ListIndexes(dir string) ([]IndexInfo, error) {
	if dir == "" {
		var err error
		dir, err = DiscoverDir()
		if err != nil {
			return nil, fmt.Errorf("discover .faqd directory: %w", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read .faqd directory: %w", err)
	}

	var out []IndexInfo
	for _, e := range entries {
		name, backend, ok := parseIndexFile(e.Name(), e.IsDir())
		if !ok {
			continue
		}
		ignored, err := IsIgnored(e.Name(), dir)
		if err != nil {
			// Unreadable or missing .gitignore: report as shared.
			ignored = false
		}
		out = append(out, IndexInfo{
			Name:    name,
			File:    e.Name(),
			Path:    filepath.Join(dir, e.Name()),
			Backend: backend,
			Local:   ignored,
		})
	}
	return out, nil
}

// parseIndexFile recognises bleve directories and SQLite files by name.
func parseIndexFile(file string, isDir bool) (name, backend string, ok bool) {
	switch {
	case isDir && file == BleveFile:
		return "", config.BackendBleve, true
	case isDir && strings.HasPrefix(file, "index-") && strings.HasSuffix(file, ".bleve"):
		return strings.TrimSuffix(strings.TrimPrefix(file, "index-"), ".bleve"), config.BackendBleve, true
	case !isDir && file == SQLiteFile:
		return "", config.BackendSQLite, true
	case !isDir && strings.HasPrefix(file, "faqd-") && strings.HasSuffix(file, ".db"):
		return strings.TrimSuffix(strings.TrimPrefix(file, "faqd-"), ".db"), config.BackendSQLite, true
	}
	return "", "", false
}
