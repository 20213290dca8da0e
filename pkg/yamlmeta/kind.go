// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"
)

// Kind enumerates every shape a value in the document tree may take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf classifies val. It panics for Go types that are not part of the
// document model, so callers switching on the result cover every case.
func KindOf(val interface{}) Kind {
	switch val.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int64, uint64:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	case *Array:
		return KindArray
	case *Map:
		return KindMap
	default:
		panic(fmt.Sprintf("Unexpected value of type %T in document", val))
	}
}

func IsScalar(val interface{}) bool {
	switch KindOf(val) {
	case KindArray, KindMap:
		return false
	default:
		return true
	}
}

// normalizeScalar folds the integer representations into int64 (or uint64
// when out of range) so that equal keys compare equal.
func normalizeScalar(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case int:
		return int64(typedVal)
	case uint64:
		if typedVal <= 1<<63-1 {
			return int64(typedVal)
		}
		return typedVal
	default:
		return val
	}
}
