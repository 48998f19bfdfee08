// context.go defines the Context interface for extension access to faqd internals.
//
// Extensions receive Context during Init(), not at construction, so they can
// register commands before the index is opened.

package extension

import (
	"github.com/jpl-au/faqd/internal/config"
	"github.com/jpl-au/faqd/internal/service"
)

// Context provides extensions controlled access to faqd internals.
type Context interface {
	// Service returns the read service over the configured index.
	Service() service.Service

	// Config returns the loaded configuration.
	Config() *config.Config

	// Backend names the index implementation serving queries.
	Backend() string
}

type extContext struct {
	svc     service.Service
	cfg     *config.Config
	backend string
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, cfg *config.Config, backend string) Context {
	return &extContext{
		svc:     svc,
		cfg:     cfg,
		backend: backend,
	}
}

func (c *extContext) Service() service.Service { return c.svc }

func (c *extContext) Config() *config.Config { return c.cfg }

func (c *extContext) Backend() string { return c.backend }
