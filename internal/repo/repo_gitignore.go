// repo_gitignore.go manages .gitignore entries for local vs shared indexes.
//
// Separated from repo.go to isolate gitignore manipulation logic. An index
// copied into .faqd can be committed alongside the project (shared) or kept
// out of git (local); Ignore and Unignore maintain .faqd/.gitignore when
// switching between the two.
//
// Design: We preserve existing gitignore content and formatting, only adding
// or removing specific index entries. A header comment marks the local index
// section.

package repo

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const localHeader = "# Local indexes (not committed)"

// parseGitignore reads a gitignore file and returns its lines (trimmed).
func parseGitignore(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	// Trim whitespace from each line for consistent matching
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}

// Ignore adds an index file to the gitignore (marks as local).
// If dir is empty, discovers the .faqd directory from the working directory.
func Ignore(file, dir string) error {
	if dir == "" {
		var err error
		dir, err = DiscoverDir()
		if err != nil {
			return err
		}
	}

	gitignore := filepath.Join(dir, ".gitignore")

	lines, err := parseGitignore(gitignore)
	if err != nil {
		return err
	}

	// Already ignored? Check exact line match.
	if slices.Contains(lines, file) {
		return nil
	}

	// Read original content to preserve formatting.
	// parseGitignore succeeded above, so file exists and is readable.
	content, err := os.ReadFile(gitignore)
	if err != nil {
		return err
	}
	s := string(content)

	// Add header if not present
	if !slices.Contains(lines, localHeader) {
		s += "\n" + localHeader + "\n"
	}

	// Append index
	s += file + "\n"

	if err := os.WriteFile(gitignore, []byte(s), 0644); err != nil {
		return err
	}
	return nil
}

// Unignore removes an index file from the gitignore (marks as shared).
// If dir is empty, discovers the .faqd directory from the working directory.
func Unignore(file, dir string) error {
	if dir == "" {
		var err error
		dir, err = DiscoverDir()
		if err != nil {
			return err
		}
	}

	gitignore := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(gitignore)
	if err != nil {
		return err
	}

	// Remove the index line, preserving other content
	lines := strings.Split(string(content), "\n")
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) != file {
			out = append(out, line)
		}
	}

	// Clean up: remove header if no local indexes remain after it
	result := strings.Join(out, "\n")
	if idx := strings.Index(result, localHeader); idx != -1 {
		rest := strings.TrimSpace(result[idx+len(localHeader):])
		// If nothing meaningful after header, remove it
		if rest == "" {
			result = strings.TrimSuffix(result[:idx], "\n")
		}
	}

	if err := os.WriteFile(gitignore, []byte(result), 0644); err != nil {
		return err
	}
	return nil
}

// IsIgnored checks if an index file is in the gitignore.
// If dir is empty, discovers the .faqd directory from the working directory.
func IsIgnored(file, dir string) (bool, error) {
	if dir == "" {
		var err error
		dir, err = DiscoverDir()
		if err != nil {
			return false, err
		}
	}

	gitignore := filepath.Join(dir, ".gitignore")

	lines, err := parseGitignore(gitignore)
	if err != nil {
		return false, err
	}

	return slices.Contains(lines, file), nil
}
