// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package liteconf loads hierarchical configuration from a JSON, YAML, or
// TOML file and overlays values taken from environment variables, exposing
// the result as a dot-addressable key space.
//
// Configuration is assembled from the following sources in priority order
// (later sources override earlier values):
//  1. The configuration file (format selected by extension)
//  2. Optional .env file entries (only for names the process has not
//     exported itself)
//  3. Process environment variables
//
// The main entry point is [Load]. Values are addressed with dot-separated
// key paths such as "database.host"; environment variable names are mapped
// onto the same key space by lower-casing and treating underscores as path
// separators, so DATABASE_HOST overrides "database.host".
//
// The resulting [Config] is built once, synchronously, and is not safe for
// concurrent mutation; guard Set calls with external synchronization if
// multiple goroutines share one Config.
package liteconf
