// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command, where settings are addressed by
// dotted keys (e.g., "index.backend").
//
// Design: Pointers are used for optional numeric fields so we can distinguish
// between "not set" (nil) and "explicitly set to zero".

package config

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/jpl-au/faqd/internal/duration"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"index.backend", "index.path", "index.url", "index.core", "index.timeout",
		"limits.max_rows",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "index.backend":
		return c.Backend(), nil
	case "index.path":
		return c.Index.Path, nil
	case "index.url":
		return c.Index.URL, nil
	case "index.core":
		return c.Core(), nil
	case "index.timeout":
		return duration.Format(c.Timeout()), nil
	case "limits.max_rows":
		return strconv.Itoa(c.MaxRows()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "index.backend":
		if !slices.Contains(Backends(), value) {
			return fmt.Errorf("%w: index.backend must be one of %v", ErrInvalidValue, Backends())
		}
		c.Index.Backend = value
	case "index.path":
		c.Index.Path = value
	case "index.url":
		c.Index.URL = value
	case "index.core":
		c.Index.Core = value
	case "index.timeout":
		if _, err := duration.Parse(value); err != nil {
			return fmt.Errorf("%w: index.timeout: %w", ErrInvalidValue, err)
		}
		c.Index.Timeout = value
	case "limits.max_rows":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: limits.max_rows must be a non-negative integer", ErrInvalidValue)
		}
		c.Limits.MaxRows = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "index.backend":
		return c.Index.Backend != ""
	case "index.path":
		return c.Index.Path != ""
	case "index.url":
		return c.Index.URL != ""
	case "index.core":
		return c.Index.Core != ""
	case "index.timeout":
		return c.Index.Timeout != ""
	case "limits.max_rows":
		return c.Limits.MaxRows != nil
	default:
		return false
	}
}
