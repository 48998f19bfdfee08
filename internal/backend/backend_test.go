package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/faqd/internal/backend"
	"github.com/jpl-au/faqd/internal/config"
	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/index/indextest"
	"github.com/jpl-au/faqd/internal/query"
)

func cfgFor(t *testing.T, kv ...string) *config.Config {
	t.Helper()
	c := &config.Config{}
	for i := 0; i < len(kv); i += 2 {
		require.NoError(t, c.Set(kv[i], kv[i+1]))
	}
	return c
}

func countAll(t *testing.T, ix index.Index) int {
	t.Helper()
	docs, err := ix.Query(context.Background(), query.MatchAll{}, index.Options{})
	require.NoError(t, err)
	return len(docs)
}

func TestOpen_Bleve(t *testing.T) {
	dir := t.TempDir()
	indextest.WriteBleve(t, filepath.Join(dir, "index.bleve"), indextest.Docs())
	indextest.WriteBleve(t, filepath.Join(dir, "index-uni.bleve"), indextest.Docs()[3:])

	ix, err := backend.Open(context.Background(), dir, "", cfgFor(t))
	require.NoError(t, err)
	defer ix.Close()
	assert.Equal(t, "bleve", ix.Name())
	assert.Equal(t, 4, countAll(t, ix))

	named, err := backend.Open(context.Background(), dir, "uni", cfgFor(t))
	require.NoError(t, err)
	defer named.Close()
	assert.Equal(t, 1, countAll(t, named))
}

func TestOpen_SQLite(t *testing.T) {
	dir := t.TempDir()
	indextest.WriteSQLite(t, filepath.Join(dir, "custom.db"), indextest.Docs())

	ix, err := backend.Open(context.Background(), dir, "", cfgFor(t,
		"index.backend", "sqlite",
		"index.path", "custom.db",
	))
	require.NoError(t, err)
	defer ix.Close()
	assert.Equal(t, "sqlite", ix.Name())
	assert.Equal(t, 4, countAll(t, ix))
}

func TestOpen_Solr(t *testing.T) {
	var core string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		core = r.URL.Path
		_, _ = w.Write([]byte(`{"response":{"numFound":1,"docs":[{"id":"x","path":["A"]}]}}`))
	}))
	defer srv.Close()

	ix, err := backend.Open(context.Background(), "", "uni", cfgFor(t,
		"index.backend", "solr",
		"index.url", srv.URL,
	))
	require.NoError(t, err)
	defer ix.Close()
	assert.Equal(t, "solr", ix.Name())
	assert.Equal(t, 1, countAll(t, ix))
	assert.Equal(t, "/uni/select", core)
}

func TestOpen_SolrTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	ix, err := backend.Open(context.Background(), "", "", cfgFor(t,
		"index.backend", "solr",
		"index.url", srv.URL,
		"index.timeout", "100ms",
	))
	require.NoError(t, err)
	defer ix.Close()

	start := time.Now()
	_, err = ix.Query(context.Background(), query.MatchAll{}, index.Options{})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestOpen_Missing(t *testing.T) {
	_, err := backend.Open(context.Background(), t.TempDir(), "", cfgFor(t))
	assert.ErrorIs(t, err, index.ErrUnavailable)

	_, err = backend.Open(context.Background(), t.TempDir(), "", cfgFor(t, "index.backend", "sqlite"))
	assert.ErrorIs(t, err, index.ErrUnavailable)

	_, err = backend.Open(context.Background(), "", "", cfgFor(t, "index.backend", "solr"))
	assert.ErrorIs(t, err, index.ErrUnavailable)
}

type slowIndex struct{ deadline bool }

func (s *slowIndex) Query(ctx context.Context, _ query.Expr, _ index.Options) ([]index.Document, error) {
	_, s.deadline = ctx.Deadline()
	return nil, nil
}
func (s *slowIndex) Name() string { return "slow" }
func (s *slowIndex) Close() error { return nil }

func TestWithTimeout(t *testing.T) {
	s := &slowIndex{}
	assert.Same(t, index.Index(s), backend.WithTimeout(s, 0))

	wrapped := backend.WithTimeout(s, time.Second)
	_, err := wrapped.Query(context.Background(), query.MatchAll{}, index.Options{})
	require.NoError(t, err)
	assert.True(t, s.deadline)
	assert.Equal(t, "slow", wrapped.Name())
}
