package liteconf

import "github.com/rs/zerolog"

// Option adjusts how [Load] assembles a Config.
type Option func(*settings)

type settings struct {
	prefix         string
	environ        map[string]string
	dotenvPath     string
	dotenvRequired bool
	logger         zerolog.Logger
}

func defaultSettings() settings {
	return settings{
		logger: zerolog.Nop(),
	}
}

// WithPrefix restricts the environment overlay to variables whose names
// begin with prefix (exact, case-sensitive match) and strips the prefix
// before deriving key paths: with prefix "MYAPP_", MYAPP_APP_PORT overrides
// "app.port" while APP_PORT is ignored entirely.
func WithPrefix(prefix string) Option {
	return func(s *settings) {
		s.prefix = prefix
	}
}

// WithEnviron supplies the flat environment mapping consulted by the
// overlay instead of the live process environment. Intended for tests and
// for callers that assemble environments themselves; Load copies the
// mapping before merging .env entries into it.
func WithEnviron(environ map[string]string) Option {
	return func(s *settings) {
		s.environ = environ
	}
}

// WithDotenv merges entries from ./.env into the environment mapping before
// the overlay runs. A missing file is skipped silently; use
// [WithDotenvFile] to require one.
func WithDotenv() Option {
	return func(s *settings) {
		s.dotenvPath = defaultDotenvFile
		s.dotenvRequired = false
	}
}

// WithDotenvFile merges entries from the named .env-style file into the
// environment mapping before the overlay runs. Names the process has
// already exported keep their exported values; the file only fills in the
// rest. A missing file fails Load with [ErrNotFound].
func WithDotenvFile(path string) Option {
	return func(s *settings) {
		s.dotenvPath = path
		s.dotenvRequired = true
	}
}

// WithLogger sets the logger used for debug-level load and overlay events.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
