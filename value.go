// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liteconf

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"
)

// Kind identifies which member of the configuration value universe a value
// belongs to. Every value stored in a [Config] tree has one of these kinds.
type Kind int

const (
	// KindInvalid marks values outside the configuration value universe.
	KindInvalid Kind = iota
	// KindNull is an explicitly stored null (nil).
	KindNull
	// KindBool is a bool.
	KindBool
	// KindInt is an int64.
	KindInt
	// KindFloat is a float64.
	KindFloat
	// KindString is a string.
	KindString
	// KindSequence is a []any of configuration values.
	KindSequence
	// KindMapping is a map[string]any of configuration values.
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "invalid"
	}
}

// KindOf reports the kind of a normalized configuration value. Values that
// have not passed through normalization (e.g. a plain int) report
// KindInvalid; the tree only ever stores normalized values.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	case []any:
		return KindSequence
	case map[string]any:
		return KindMapping
	default:
		return KindInvalid
	}
}

// normalize converts a decoded or caller-supplied value into the canonical
// value universe: nil, bool, int64, float64, string, []any, map[string]any.
//
// The three file decoders disagree on concrete Go types (encoding/json emits
// json.Number under UseNumber, yaml.v3 emits int and time.Time, BurntSushi
// emits int64 and typed slices); normalization is what makes the tree
// uniform regardless of source format. A json.Number becomes int64 when its
// literal form is integral and float64 otherwise. TOML/YAML timestamps are
// stored as RFC 3339 strings since the value universe has no time kind.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool, int64, float64, string:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case uint:
		return normalizeUint(uint64(val))
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return normalizeUint(val)
	case float32:
		return float64(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("error normalizing number %q: %w", val.String(), err)
		}
		return f, nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			norm, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			norm, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = norm
		}
		return out, nil
	default:
		return normalizeReflect(v)
	}
}

// normalizeReflect handles the typed containers decoders produce when they
// know the element type (e.g. []map[string]any from TOML array tables, or
// map[string]string from a caller).
func normalizeReflect(v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			norm, err := normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported mapping key type %s: configuration keys must be strings", rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			norm, err := normalize(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = norm
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported configuration value type %T", v)
	}
}

func normalizeUint(v uint64) (any, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("integer value %d overflows the configuration int range", v)
	}
	return int64(v), nil
}
