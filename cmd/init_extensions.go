/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until the first
// command that needs the index runs. The service is created once and shared
// across all extensions via the Context.

package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/jpl-au/faqd/extension"
	"github.com/jpl-au/faqd/internal/backend"
	"github.com/jpl-au/faqd/internal/config"
	"github.com/jpl-au/faqd/internal/document"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/jpl-au/faqd/internal/repo"
)

// noIndexCommands lists commands that bypass automatic index initialisation.
var noIndexCommands map[string]bool

// buildNoIndexCommands collects the commands that run without an open index:
// help and completion plus whatever extensions declare through Indexless.
func buildNoIndexCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Indexless); ok {
			for _, name := range s.NoIndexCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

var (
	extContext extension.Context
	extService *document.Service
	initOnce   sync.Once
	initErr    error
)

// initExtensions opens the configured index and injects the read service
// into every Initializable extension.
//
// Solr needs no .faqd directory, so a missing workspace is only an error
// for the embedded backends.
func initExtensions(ctx context.Context) error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		faqdDir, err := repo.Resolve(Dir())
		if err != nil && cfg.Backend() != config.BackendSolr {
			initErr = err
			return
		}

		ix, err := backend.Open(ctx, faqdDir, Index(), cfg)
		if err != nil {
			initErr = fmt.Errorf("%s: %w", cfg.Backend(), err)
			return
		}

		svc := document.New(ix, document.WithMaxRows(cfg.MaxRows()))
		extService = svc

		project := faqdDir
		if cfg.Backend() == config.BackendSolr {
			core := cfg.Core()
			if Index() != "" {
				core = Index()
			}
			project = cfg.Index.URL + "/" + core
		}
		log.SetProject(project)

		extContext = extension.NewContext(svc, cfg, ix.Name())

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		noIndexCommands = buildNoIndexCommands()
	})
}
