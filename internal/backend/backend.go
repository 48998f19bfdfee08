// Package backend opens the FAQ index selected by configuration.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jpl-au/faqd/internal/config"
	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/index/bleveindex"
	"github.com/jpl-au/faqd/internal/index/solr"
	"github.com/jpl-au/faqd/internal/index/sqliteindex"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/repo"
)

// Open returns the index for cfg. dir is the .faqd directory embedded
// indexes are resolved against. name selects a named index: index-NAME.bleve
// or faqd-NAME.db for the embedded backends, the core for Solr.
//
// Queries through the returned index are bounded by cfg.Timeout(): the Solr
// HTTP client carries it, embedded indexes get a context deadline.
func Open(ctx context.Context, dir, name string, cfg *config.Config) (index.Index, error) {
	var (
		ix  index.Index
		err error
	)
	switch b := cfg.Backend(); b {
	case config.BackendBleve:
		ix, err = bleveindex.Open(repo.IndexPath(dir, b, cfg.Index.Path, name))
	case config.BackendSQLite:
		ix, err = sqliteindex.Open(ctx, repo.IndexPath(dir, b, cfg.Index.Path, name))
	case config.BackendSolr:
		core := cfg.Core()
		if name != "" {
			core = name
		}
		c, err := solr.New(cfg.Index.URL, core, &http.Client{Timeout: cfg.Timeout()})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidValue, b)
	}
	if err != nil {
		return nil, err
	}
	return WithTimeout(ix, cfg.Timeout()), nil
}

// WithTimeout bounds every query through an embedded index by d. Zero leaves
// ix unchanged.
func WithTimeout(ix index.Index, d time.Duration) index.Index {
	if d <= 0 {
		return ix
	}
	return &timeoutIndex{Index: ix, timeout: d}
}

type timeoutIndex struct {
	index.Index
	timeout time.Duration
}

func (t *timeoutIndex) Query(ctx context.Context, q query.Expr, opts index.Options) ([]index.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Index.Query(ctx, q, opts)
}
