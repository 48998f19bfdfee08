package repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexFileName(t *testing.T) {
	tests := []struct {
		backend, name, want string
	}{
		{"bleve", "", "index.bleve"},
		{"bleve", "uni", "index-uni.bleve"},
		{"bleve", "mine.bleve", "mine.bleve"},
		{"sqlite", "", "faqd.db"},
		{"sqlite", "uni", "faqd-uni.db"},
		{"sqlite", "other.db", "other.db"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IndexFileName(tt.backend, tt.name), "%s/%s", tt.backend, tt.name)
	}
}

func TestIndexPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/p/.faqd", "index.bleve"), IndexPath("/p/.faqd", "bleve", "", ""))
	assert.Equal(t, filepath.Join("/p/.faqd", "custom.bleve"), IndexPath("/p/.faqd", "bleve", "custom.bleve", ""))
	assert.Equal(t, "/srv/faq.db", IndexPath("/p/.faqd", "sqlite", "/srv/faq.db", ""))
	// An explicit name overrides the configured path.
	assert.Equal(t, filepath.Join("/p/.faqd", "faqd-uni.db"), IndexPath("/p/.faqd", "sqlite", "/srv/faq.db", "uni"))
}

func TestInitAndDiscover(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	_, err := DiscoverDir()
	if err == nil {
		t.Skip("a .faqd directory exists above the temp dir")
	}
	assert.ErrorIs(t, err, ErrNotInitialised)

	require.NoError(t, Init(false, "", false))
	assert.FileExists(t, filepath.Join(Dir, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(Dir, BleveFile))

	assert.Error(t, Init(false, "", false), "second init without force")
	assert.NoError(t, Init(true, "", false))

	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	t.Chdir(sub)

	got, err := DiscoverDir()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(root, Dir))
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotReal)

	resolved, err := Resolve(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, Dir), resolved)

	_, err = Resolve(sub)
	assert.ErrorIs(t, err, ErrNotInitialised)
}

func TestInit_Local(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Init(false, root, true))

	dir := filepath.Join(root, Dir)
	for _, f := range []string{BleveFile, SQLiteFile} {
		ignored, err := IsIgnored(f, dir)
		require.NoError(t, err)
		assert.True(t, ignored, f)
	}
}

func TestIgnoreUnignore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Init(false, root, false))
	dir := filepath.Join(root, Dir)

	require.NoError(t, Ignore("index-uni.bleve", dir))
	require.NoError(t, Ignore("index-uni.bleve", dir))
	content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(content), localHeader)
	assert.Equal(t, 1, countLines(string(content), "index-uni.bleve"))

	require.NoError(t, Unignore("index-uni.bleve", dir))
	ignored, err := IsIgnored("index-uni.bleve", dir)
	require.NoError(t, err)
	assert.False(t, ignored)

	content, err = os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), localHeader)
	assert.Contains(t, string(content), "config.yaml")
}

func TestListIndexes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Init(false, root, false))
	dir := filepath.Join(root, Dir)

	require.NoError(t, os.Mkdir(filepath.Join(dir, BleveFile), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "index-uni.bleve"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "faqd-hosp.db"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, Ignore("faqd-hosp.db", dir))

	got, err := ListIndexes(dir)
	require.NoError(t, err)
	require.Len(t, got, 3)

	byFile := map[string]IndexInfo{}
	for _, ix := range got {
		byFile[ix.File] = ix
	}
	assert.Equal(t, "", byFile[BleveFile].Name)
	assert.Equal(t, "bleve", byFile[BleveFile].Backend)
	assert.Equal(t, "uni", byFile["index-uni.bleve"].Name)
	assert.Equal(t, "sqlite", byFile["faqd-hosp.db"].Backend)
	assert.True(t, byFile["faqd-hosp.db"].Local)
	assert.False(t, byFile["index-uni.bleve"].Local)
}

func countLines(s, line string) int {
	n := 0
	for _, l := range strings.Split(s, "\n") {
		if l == line {
			n++
		}
	}
	return n
}
