// Package config provides reading and writing of faqd configuration.
// Supports both global (~/.faqd/config.yaml) and local (.faqd/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/faqd/internal/duration"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.faqd/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .faqd/config.yaml
	ScopeLocal
)

// Index backends.
const (
	BackendBleve  = "bleve"
	BackendSolr   = "solr"
	BackendSQLite = "sqlite"
)

// Backends returns the accepted index.backend values.
func Backends() []string {
	return []string{BackendBleve, BackendSolr, BackendSQLite}
}

// Author identifies who runs commands, for the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Index selects and locates the FAQ index.
type Index struct {
	Backend string `yaml:"backend,omitempty"`
	// Path is the bleve directory or SQLite file, relative to .faqd unless
	// absolute.
	Path string `yaml:"path,omitempty"`
	// URL and Core address a Solr core.
	URL     string `yaml:"url,omitempty"`
	Core    string `yaml:"core,omitempty"`
	Timeout string `yaml:"timeout,omitempty"`
}

// Limits holds result size limits.
type Limits struct {
	MaxRows *int `yaml:"max_rows,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultBackend = BackendBleve
	DefaultCore    = "faq"
	DefaultTimeout = 30 * time.Second
	DefaultMaxRows = 0 // no cap
)

// MaxMaxRows is the largest row count any backend accepts.
const MaxMaxRows = 2147483647

// Config contains configuration for faqd.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Index  Index  `yaml:"index,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Index.Backend != "" && !slices.Contains(Backends(), c.Index.Backend) {
		return fmt.Errorf("%w: index.backend must be one of %v, got %q",
			ErrInvalidValue, Backends(), c.Index.Backend)
	}
	if c.Index.Timeout != "" {
		if _, err := duration.Parse(c.Index.Timeout); err != nil {
			return fmt.Errorf("%w: index.timeout: %w", ErrInvalidValue, err)
		}
	}
	if c.Limits.MaxRows != nil {
		v := *c.Limits.MaxRows
		if v < 0 || v > MaxMaxRows {
			return fmt.Errorf("%w: max_rows must be between 0 and %d, got %d",
				ErrInvalidValue, MaxMaxRows, v)
		}
	}
	return nil
}

// Backend returns the configured index backend (defaults to bleve).
func (c *Config) Backend() string {
	if c.Index.Backend == "" {
		return DefaultBackend
	}
	return c.Index.Backend
}

// Core returns the Solr core name (defaults to "faq").
func (c *Config) Core() string {
	if c.Index.Core == "" {
		return DefaultCore
	}
	return c.Index.Core
}

// Timeout returns the per-request index timeout (defaults to 30s). Zero
// disables it.
func (c *Config) Timeout() time.Duration {
	if c.Index.Timeout == "" {
		return DefaultTimeout
	}
	d, err := duration.Parse(c.Index.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// MaxRows returns the row cap for path enumeration (defaults to no cap).
func (c *Config) MaxRows() int {
	if c.Limits.MaxRows == nil {
		return DefaultMaxRows
	}
	return *c.Limits.MaxRows
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".faqd", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.faqd/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".faqd", "config.yaml")
}

// Path returns the local config path (for backwards compatibility).
func Path() string {
	return LocalPath()
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	// Check if local config exists
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	// Fall back to global
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
