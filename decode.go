// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// decodeFile reads a configuration file and decodes it into an untyped
// mapping. The decoder is selected by the file extension. A missing file is
// reported as [ErrNotFound] before any decoding, an unknown extension as
// [ErrUnsupportedFormat], and malformed content as a [*ParseError] carrying
// the decoder's diagnostic. A file whose top-level value is not a mapping
// is rejected the same way: every key path walks mapping keys from the
// root, so a bare scalar or array has no addressable structure.
func decodeFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	var decoded any
	var format string

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		format = "json"
		decoded, err = decodeJSON(data)
	case ".yaml", ".yml":
		format = "yaml"
		err = yaml.Unmarshal(data, &decoded)
	case ".toml":
		format = "toml"
		var m map[string]any
		err = toml.Unmarshal(data, &m)
		if m == nil {
			m = make(map[string]any)
		}
		decoded = m
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	norm, err := normalize(decoded)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	root, ok := norm.(map[string]any)
	if !ok {
		return nil, &ParseError{
			Format: format,
			Err:    fmt.Errorf("top-level value is %s, want a mapping", KindOf(norm)),
		}
	}

	return root, nil
}

// decodeJSON decodes a complete JSON document. UseNumber keeps the integral
// vs. floating distinction that plain unmarshaling would collapse to
// float64; trailing content after the first value is rejected.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after top-level value")
	}

	return v, nil
}
