// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// applyEnviron overlays environment-derived values onto the tree. Each
// entry is processed independently: filter by prefix, strip it, derive a
// key path from the variable name, coerce the raw value, and write it with
// a single tree set. The overlay only adds or overwrites, never removes.
//
// Iteration over environ follows Go map order and is unspecified: when two
// variable names derive the same key path (see derivePath), whichever entry
// happens to be processed last wins.
func applyEnviron(t *tree, environ map[string]string, prefix string, logger zerolog.Logger) {
	for name, raw := range environ {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}

		path := derivePath(strings.TrimPrefix(name, prefix))
		if path == "" {
			continue
		}

		value := coerceValue(raw)
		t.set(path, value)

		logger.Debug().
			Str("name", name).
			Str("path", path).
			Stringer("kind", KindOf(value)).
			Msg("environment override applied")
	}
}

// derivePath maps an environment variable name (prefix already stripped)
// onto a key path: lower-case the name, replace every "__" with ".", then
// replace every remaining "_" with ".".
//
// The double-underscore pass runs first, but nothing protects its output
// from the single-underscore pass, so FOO_BAR and FOO__BAR both derive
// "foo.bar". The collision is kept deliberately: existing deployments
// depend on the derived names, and changing the rule would silently move
// their overrides.
func derivePath(name string) string {
	path := strings.ToLower(name)
	path = strings.ReplaceAll(path, "__", pathSeparator)
	path = strings.ReplaceAll(path, "_", pathSeparator)
	return path
}

// coerceValue parses a raw environment value as a single JSON literal,
// which covers booleans, integers, floats, quoted strings, arrays, and
// objects. Anything that does not parse cleanly as one complete literal
// (including values with trailing content, like "9000ms") stays a plain
// string; coercion never fails an overlay entry.
func coerceValue(raw string) any {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return raw
	}
	if _, err := dec.Token(); err != io.EOF {
		return raw
	}

	norm, err := normalize(v)
	if err != nil {
		return raw
	}
	return norm
}
