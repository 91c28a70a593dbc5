// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotenvFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestMergeDotenv_FillsOnlyMissingNames(t *testing.T) {
	// Arrange
	p := writeDotenvFile(t, "FOO=from_file\nBAR=baz\n")
	environ := map[string]string{"FOO": "exported"}

	// Act
	err := mergeDotenv(environ, p, true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"FOO": "exported",
		"BAR": "baz",
	}, environ)
}

func TestMergeDotenv_CommentsBlanksAndQuotes(t *testing.T) {
	// Arrange
	p := writeDotenvFile(t, `# Application .env file

PLAIN=simple_text
SINGLE_QUOTED='value with spaces'
DOUBLE_QUOTED="another value"

# trailing comment
NUMBER=42
`)
	environ := map[string]string{}

	// Act
	err := mergeDotenv(environ, p, true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"PLAIN":         "simple_text",
		"SINGLE_QUOTED": "value with spaces",
		"DOUBLE_QUOTED": "another value",
		"NUMBER":        "42",
	}, environ)
}

func TestMergeDotenv_MissingFile(t *testing.T) {
	// Arrange
	missing := filepath.Join(t.TempDir(), ".env")
	environ := map[string]string{"KEEP": "me"}

	// Act & Assert
	// Optional file: skipped silently.
	require.NoError(t, mergeDotenv(environ, missing, false))
	assert.Equal(t, map[string]string{"KEEP": "me"}, environ)

	// Explicitly named file: construction error.
	err := mergeDotenv(environ, missing, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_WithDotenvFile(t *testing.T) {
	// Arrange
	cfgPath := writeConfigFile(t, "config.json",
		`{"app":{"port":8080},"database":{"host":"localhost"}}`)
	envPath := writeDotenvFile(t, "APP_PORT=3000\nDATABASE_HOST=db.local.dev\n")

	// Act
	cfg, err := Load(cfgPath, WithEnviron(map[string]string{}), WithDotenvFile(envPath))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3000), cfg.Int("app.port", 0))
	assert.Equal(t, "db.local.dev", cfg.String("database.host", ""))
}

func TestLoad_WithDotenvFile_ExportedVariablesWin(t *testing.T) {
	// Arrange
	cfgPath := writeConfigFile(t, "config.json", `{"app":{"port":8080}}`)
	envPath := writeDotenvFile(t, "APP_PORT=3000\n")
	environ := map[string]string{"APP_PORT": "9000"}

	// Act
	cfg, err := Load(cfgPath, WithEnviron(environ), WithDotenvFile(envPath))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(9000), cfg.Int("app.port", 0))

	// The caller's environ mapping is copied, not mutated.
	assert.Equal(t, map[string]string{"APP_PORT": "9000"}, environ)
}

func TestLoad_WithDotenvFile_Missing(t *testing.T) {
	// Arrange
	cfgPath := writeConfigFile(t, "config.json", `{}`)

	// Act
	_, err := Load(cfgPath, WithDotenvFile(filepath.Join(t.TempDir(), ".env")))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
