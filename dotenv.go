// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultDotenvFile is the path consulted by [WithDotenv].
const defaultDotenvFile = ".env"

// processEnviron snapshots the live process environment into a flat
// mapping. Entries without "=" (which os.Environ should never produce) are
// skipped.
func processEnviron() map[string]string {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		environ[name] = value
	}
	return environ
}

// mergeDotenv parses a .env-style file (NAME=value lines, # comments and
// blank lines ignored, surrounding quotes stripped) and fills in names the
// environ mapping does not already contain. Variables the process has
// exported keep their values: the file only supplies the rest.
//
// When required is false a missing file is skipped silently; otherwise it
// is reported as [ErrNotFound].
func mergeDotenv(environ map[string]string, path string, required bool) error {
	entries, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !required {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("error parsing dotenv file %s: %w", path, err)
	}

	for name, value := range entries {
		if _, exists := environ[name]; !exists {
			environ[name] = value
		}
	}

	return nil
}
