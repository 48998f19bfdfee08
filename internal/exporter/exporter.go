// Package exporter writes FAQ entries to the filesystem as markdown, one
// file per entry under directories named after its path segments.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/faqd/internal/format"
	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/progress"
)

// ErrNoDocuments is returned when nothing matches the requested paths.
var ErrNoDocuments = errors.New("no documents to export")

// Lister reads the entries to export.
type Lister interface {
	ListByPaths(ctx context.Context, paths []string) ([]index.Document, error)
}

// Options configures an export operation.
type Options struct {
	Paths []string // Path segments every exported entry must have
	Force bool     // Overwrite existing files
}

// Result contains the outcome of an export operation.
type Result struct {
	Exported int      `json:"exported"`
	Files    []string `json:"files"`
}

// Run exports the entries matching opts.Paths into dst. Each entry lands at
// dst/<segment>/.../<id>.md. Files are written through os.Root so no name
// can escape dst.
func Run(ctx context.Context, w io.Writer, src Lister, dst string, opts Options) (Result, error) {
	var result Result

	docs, err := src.ListByPaths(ctx, opts.Paths)
	if err != nil {
		return result, err
	}
	if len(docs) == 0 {
		return result, ErrNoDocuments
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return result, fmt.Errorf("creating destination directory: %w", err)
	}
	root, err := os.OpenRoot(dst)
	if err != nil {
		return result, fmt.Errorf("opening destination root: %w", err)
	}
	defer root.Close()

	prog := progress.New("Exporting", len(docs))
	defer prog.Done()

	for _, d := range docs {
		name := FileName(d)
		if err := writeFileInRoot(root, name, format.Document(d), opts.Force); err != nil {
			return result, err
		}
		prog.Increment()

		outPath := filepath.Join(dst, name)
		result.Files = append(result.Files, outPath)
		result.Exported++
		fmt.Fprintf(w, "Exported: %s -> %s\n", d.ID, outPath)
	}
	return result, nil
}

// FileName returns the relative file an entry is written to.
func FileName(d index.Document) string {
	parts := make([]string, 0, len(d.Path)+1)
	for _, s := range d.Path {
		parts = append(parts, safeName(s))
	}
	parts = append(parts, safeName(d.ID)+".md")
	return filepath.Join(parts...)
}

// safeName makes a segment usable as a single file name.
func safeName(s string) string {
	s = strings.NewReplacer("/", "_", `\`, "_").Replace(s)
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}

// writeFileInRoot writes content to a file within root, creating parent
// directories as needed.
func writeFileInRoot(root *os.Root, name, content string, force bool) error {
	if !force {
		if _, err := root.Stat(name); err == nil {
			return fmt.Errorf("file exists: %s (use --force to overwrite)", name)
		}
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := mkdirAllInRoot(root, dir); err != nil {
			return err
		}
	}

	f, err := root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

// mkdirAllInRoot creates a directory and all parents within root.
func mkdirAllInRoot(root *os.Root, path string) error {
	parts := strings.Split(filepath.Clean(path), string(filepath.Separator))
	for i := range parts {
		dir := filepath.Join(parts[:i+1]...)
		if err := root.Mkdir(dir, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	return nil
}
