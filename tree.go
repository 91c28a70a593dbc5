// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import "strings"

// pathSeparator separates segments of a key path ("database.host").
const pathSeparator = "."

// tree is the in-memory configuration tree. The root is always a mapping;
// key paths resolve by walking mapping keys only, so a dotted path never
// indexes into a sequence.
type tree struct {
	root map[string]any
}

func newTree(root map[string]any) *tree {
	if root == nil {
		root = make(map[string]any)
	}
	return &tree{root: root}
}

// splitPath segments a key path. Empty segments (adjacent, leading, or
// trailing separators) are dropped, so resolution and mutation agree on the
// same segmentation for every path, including paths derived from
// environment variable names.
func splitPath(path string) []string {
	parts := strings.Split(path, pathSeparator)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// get resolves a key path and reports whether it was found. A non-mapping
// node encountered mid-path makes the remaining path unresolved; matching
// is exact and case-sensitive. get never mutates the tree.
func (t *tree) get(path string) (any, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, false
	}

	var current any = t.root
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// set stores a value at a key path, creating intermediate mappings as
// needed. An intermediate slot holding anything other than a mapping is
// replaced by a fresh mapping: the last writer wins and structure bends to
// the newest path, destroying whatever scalar or sequence was there. The
// final segment is assigned outright with no merge. Setting an empty path
// is a no-op.
func (t *tree) set(path string, value any) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return
	}

	current := t.root
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = value
}
