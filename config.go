// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config is a hierarchical configuration assembled from a file plus
// environment overrides, addressed by dot-separated key paths. It is built
// once by [Load] and is not safe for concurrent mutation.
type Config struct {
	file   string
	tree   *tree
	logger zerolog.Logger
}

// Load builds a Config from the configuration file at path.
//
// The file format is selected by extension (.json, .yaml, .yml, .toml) and
// its top-level value must be a mapping. After decoding, values derived
// from environment variables are overlaid onto the tree: each variable name
// is lower-cased with underscores treated as path separators (DATABASE_HOST
// sets "database.host"), and each raw value is coerced by attempting a
// JSON-literal parse with a plain-string fallback.
//
// Construction is all-or-nothing: any error aborts Load with no partially
// loaded Config. Errors are distinguishable with errors.Is/As — see
// [ErrNotFound], [ErrUnsupportedFormat], and [ParseError].
func Load(path string, opts ...Option) (*Config, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	root, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	// Copy the caller's mapping so .env merging never mutates it.
	var environ map[string]string
	if s.environ != nil {
		environ = make(map[string]string, len(s.environ))
		for name, value := range s.environ {
			environ[name] = value
		}
	} else {
		environ = processEnviron()
	}

	if s.dotenvPath != "" {
		if err := mergeDotenv(environ, s.dotenvPath, s.dotenvRequired); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		file:   path,
		tree:   newTree(root),
		logger: s.logger,
	}

	applyEnviron(cfg.tree, environ, s.prefix, s.logger)

	cfg.logger.Debug().
		Str("file", path).
		Int("keys", len(root)).
		Msg("configuration loaded")

	return cfg, nil
}

// Get resolves a key path and reports whether it exists. The boolean
// distinguishes a stored null from an absent key; Get never errors and
// never mutates the tree.
func (c *Config) Get(path string) (any, bool) {
	return c.tree.get(path)
}

// GetDefault returns the value at path, or def when the path does not
// resolve.
func (c *Config) GetDefault(path string, def any) any {
	if v, ok := c.tree.get(path); ok {
		return v
	}
	return def
}

// Require returns the value at path, or an error wrapping [ErrMissingKey]
// when the path does not resolve. Use it where an absent key is a caller
// error rather than a value with a sensible default.
func (c *Config) Require(path string) (any, error) {
	v, ok := c.tree.get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, path)
	}
	return v, nil
}

// Set stores value at path, creating intermediate mappings as needed. An
// intermediate slot holding a scalar or sequence is replaced by a fresh
// mapping, and the final slot is assigned outright: the newest write wins
// with no merge. The value is normalized into the configuration value
// universe first (ints widen to int64, typed slices and maps become []any
// and map[string]any); values that cannot be represented return an error
// and leave the tree untouched.
func (c *Config) Set(path string, value any) error {
	norm, err := normalize(value)
	if err != nil {
		return fmt.Errorf("error setting %q: %w", path, err)
	}
	c.tree.set(path, norm)
	return nil
}

// All returns the entire configuration as a nested mapping. The returned
// map is the live internal structure, not a copy: mutations through it are
// visible to the Config and vice versa.
func (c *Config) All() map[string]any {
	return c.tree.root
}

// File returns the path the configuration was loaded from.
func (c *Config) File() string {
	return c.file
}

// String returns the string at path, or def when the path is absent or
// holds a different kind.
func (c *Config) String(path, def string) string {
	if v, ok := c.tree.get(path); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Int returns the integer at path, or def when the path is absent or holds
// a different kind.
func (c *Config) Int(path string, def int64) int64 {
	if v, ok := c.tree.get(path); ok {
		if i, ok := v.(int64); ok {
			return i
		}
	}
	return def
}

// Bool returns the boolean at path, or def when the path is absent or
// holds a different kind.
func (c *Config) Bool(path string, def bool) bool {
	if v, ok := c.tree.get(path); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Float returns the float at path, or def when the path is absent or holds
// a different kind. Stored integers are widened to float64.
func (c *Config) Float(path string, def float64) float64 {
	if v, ok := c.tree.get(path); ok {
		switch n := v.(type) {
		case float64:
			return n
		case int64:
			return float64(n)
		}
	}
	return def
}
