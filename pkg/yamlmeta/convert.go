// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"
	"time"

	"github.com/aidmat/yamlpp/pkg/filepos"
	"github.com/aidmat/yamlpp/pkg/orderedmap"
)

// NewASTFromInterface converts plain Go values (*orderedmap.Map, []interface{}
// and scalars) into document nodes.
func NewASTFromInterface(val interface{}) interface{} {
	return convertToAST(val, filepos.NewUnknownPosition())
}

func NewASTFromInterfaceWithPosition(val interface{}, defaultPosition *filepos.Position) interface{} {
	return convertToAST(val, defaultPosition)
}

// NewGoFromAST converts document nodes into *orderedmap.Map, []interface{} and scalars.
func NewGoFromAST(val interface{}) interface{} {
	return convertToGo(val, false)
}

func convertToGo(val interface{}, skipNulls bool) interface{} {
	switch typedVal := val.(type) {
	case *Map:
		result := orderedmap.NewMap()
		for _, item := range typedVal.Items {
			if skipNulls && item.Value == nil {
				continue
			}
			// Catch any cases where unique key invariant is violated
			if _, found := result.Get(item.Key); found {
				panic(fmt.Sprintf("Unexpected duplicate key: %v", item.Key))
			}
			result.Set(item.Key, convertToGo(item.Value, skipNulls))
		}
		return result

	case *Array:
		result := []interface{}{}
		for _, item := range typedVal.Items {
			result = append(result, convertToGo(item.Value, skipNulls))
		}
		return result

	case map[interface{}]interface{}:
		panic("Expected *Map instead of map[interface{}]interface{} in convertToGo")

	case map[string]interface{}:
		panic("Expected *Map instead of map[string]interface{} in convertToGo")

	default:
		return val
	}
}

func convertToAST(val interface{}, defaultPosition *filepos.Position) interface{} {
	switch typedVal := val.(type) {
	case *Map, *Array:
		return typedVal

	case []interface{}:
		result := &Array{Position: defaultPosition.DeepCopy()}
		for _, item := range typedVal {
			result.Items = append(result.Items, &ArrayItem{
				Value:    convertToAST(item, defaultPosition),
				Position: defaultPosition.DeepCopy(),
			})
		}
		return result

	case map[interface{}]interface{}:
		panic("Expected *orderedmap.Map instead of map[interface{}]interface{} in convertToAST")

	case map[string]interface{}:
		panic("Expected *orderedmap.Map instead of map[string]interface{} in convertToAST")

	case *orderedmap.Map:
		result := &Map{Position: defaultPosition.DeepCopy()}
		typedVal.Iterate(func(k, v interface{}) {
			result.Items = append(result.Items, &MapItem{
				Key:      convertScalar(k),
				Value:    convertToAST(v, defaultPosition),
				Position: defaultPosition.DeepCopy(),
			})
		})
		return result

	default:
		return convertScalar(val)
	}
}

func convertScalar(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case int:
		return int64(typedVal)
	case int8:
		return int64(typedVal)
	case int16:
		return int64(typedVal)
	case int32:
		return int64(typedVal)
	case uint:
		return uint64(typedVal)
	case uint8:
		return int64(typedVal)
	case uint16:
		return int64(typedVal)
	case uint32:
		return int64(typedVal)
	case float32:
		return float64(typedVal)
	case time.Time:
		return typedVal.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return typedVal.String()
	default:
		return val
	}
}
