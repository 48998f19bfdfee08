// Package taxonomy derives location views from the path arrays of FAQ
// documents: the distinct paths, their top-level segments, the sub-paths
// under one segment, and a prefix-sharing tree.
//
// Zero-length paths are skipped. A document without a location has no place
// in any view, so UniquePaths drops it and every other view inherits that.
//
// All functions are pure: they read the given slice and return fresh values.
package taxonomy

import (
	"strconv"
	"strings"
)

// RootLabel is the label of the synthetic root node. The root is never
// returned to callers.
const RootLabel = "root"

// Path is an ordered sequence of segments, root to leaf.
type Path []string

// Equal reports whether p and o have the same segments in the same order.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String joins segments with "/" for display.
func (p Path) String() string {
	return strings.Join(p, "/")
}

// clone returns a copy that never aliases p and is never nil.
func (p Path) clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// key encodes p so that distinct segment sequences never share a key, even
// when segments contain the separator.
func (p Path) key() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(strconv.Quote(s))
	}
	return b.String()
}

// UniquePaths returns one copy of each distinct non-empty path, in order of
// first occurrence.
func UniquePaths(paths []Path) []Path {
	seen := make(map[string]struct{}, len(paths))
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		k := p.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p.clone())
	}
	return out
}

// TopLevelSegments returns the distinct first segments, in order of first
// occurrence.
func TopLevelSegments(paths []Path) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range UniquePaths(paths) {
		if _, ok := seen[p[0]]; ok {
			continue
		}
		seen[p[0]] = struct{}{}
		out = append(out, p[0])
	}
	return out
}

// SubPathsUnder returns the unique paths starting with top, with top removed.
// A path equal to [top] yields an empty path.
func SubPathsUnder(paths []Path, top string) []Path {
	out := make([]Path, 0)
	for _, p := range UniquePaths(paths) {
		if p[0] != top {
			continue
		}
		out = append(out, p[1:].clone())
	}
	return out
}
