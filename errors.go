// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"errors"
	"fmt"
)

// Errors returned by [Load] and the strict access methods. Callers can
// distinguish them with errors.Is, since remediation differs: a missing file
// must be created, an unsupported extension renamed or converted, malformed
// content fixed in place.
var (
	// ErrNotFound indicates the configuration file does not exist at the
	// given path. Reported before any decoding is attempted.
	ErrNotFound = errors.New("configuration file not found")
	// ErrUnsupportedFormat indicates the file extension does not match any
	// known decoder (.json, .yaml, .yml, .toml).
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	// ErrMissingKey is returned by [Config.Require] when a key path does not
	// resolve. The non-strict read paths return a default instead.
	ErrMissingKey = errors.New("configuration key not found")
)

// ParseError indicates the decoder recognized the file format but the
// content is malformed. It wraps the decoder's own diagnostic.
type ParseError struct {
	// Format is the decoder that failed ("json", "yaml", "toml").
	Format string
	// Err is the underlying decoder diagnostic.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing %s configuration: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
