// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// structValidator caches struct metadata across Validate calls.
var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Decode copies the configuration tree into target, which must be a
// non-nil pointer to a struct (or map) using `json` field tags. The copy
// goes through an encoding/json round trip so the mapping rules are the
// same ones the JSON file decoder uses.
func (c *Config) Decode(target any) error {
	data, err := json.Marshal(c.tree.root)
	if err != nil {
		return fmt.Errorf("error encoding configuration tree: %w", err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("error decoding configuration into %T: %w", target, err)
	}

	return nil
}

// Validate decodes the tree into target and checks the result against its
// `validate` struct tags. Validation is an optional layer invoked by the
// caller; the tree, the overlay, and the read paths never consult a
// schema.
//
// The returned error wraps validator.ValidationErrors when individual
// fields fail, so callers can unwrap per-field diagnostics with errors.As.
func (c *Config) Validate(target any) error {
	if err := c.Decode(target); err != nil {
		return err
	}

	if err := structValidator.Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("configuration validation failed: %w", fieldErrs)
		}
		return fmt.Errorf("error validating configuration: %w", err)
	}

	return nil
}
