// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DecoderDisagreements(t *testing.T) {
	// The three decoders emit different concrete types for the same logical
	// values; normalization must land them all in the same universe.
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"yaml int", int(8080), int64(8080)},
		{"toml int64", int64(8080), int64(8080)},
		{"json integral number", json.Number("8080"), int64(8080)},
		{"json float number", json.Number("0.5"), 0.5},
		{"json number with point stays float", json.Number("9000.0"), float64(9000)},
		{"float32", float32(1.5), 1.5},
		{"small uint", uint32(7), int64(7)},
		{"timestamp", time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC), "1979-05-27T07:32:00Z"},
		{"typed string slice", []string{"a", "b"}, []any{"a", "b"}},
		{"toml array tables", []map[string]any{{"h": "a"}}, []any{map[string]any{"h": "a"}}},
		{"typed map", map[string]int{"rps": 100}, map[string]any{"rps": int64(100)}},
		{"nested mixed", map[string]any{"p": int(1), "s": []any{uint8(2)}},
			map[string]any{"p": int64(1), "s": []any{int64(2)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := normalize(tt.in)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		wantMsg string
	}{
		{"channel", make(chan int), "unsupported configuration value type"},
		{"func", func() {}, "unsupported configuration value type"},
		{"non-string map key", map[int]any{1: "x"}, "keys must be strings"},
		{"uint64 overflow", uint64(math.MaxUint64), "overflows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := normalize(tt.in)

			// Assert
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestKindOf(t *testing.T) {
	// Arrange
	values := map[Kind]any{
		KindNull:     nil,
		KindBool:     true,
		KindInt:      int64(1),
		KindFloat:    1.5,
		KindString:   "s",
		KindSequence: []any{},
		KindMapping:  map[string]any{},
	}

	// Act & Assert
	for kind, v := range values {
		assert.Equal(t, kind, KindOf(v), "value %#v", v)
	}

	// Un-normalized values are outside the universe.
	assert.Equal(t, KindInvalid, KindOf(int(1)))
	assert.Equal(t, KindInvalid, KindOf([]string{"a"}))
}
