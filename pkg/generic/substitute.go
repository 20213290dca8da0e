// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
)

// substitute copies body replacing map entry values that are strings naming
// a binding. Bound values are inserted as deep copies and are not visited.
func substitute(body interface{}, bindings map[string]interface{}) interface{} {
	switch typedBody := body.(type) {
	case *yamlmeta.Map:
		result := &yamlmeta.Map{Position: typedBody.Position}
		for _, item := range typedBody.Items {
			newVal := substitute(item.Value, bindings)
			if str, ok := item.Value.(string); ok {
				if bound, found := bindings[str]; found {
					newVal = yamlmeta.DeepCopy(bound)
				}
			}
			result.Items = append(result.Items, &yamlmeta.MapItem{Key: item.Key, Value: newVal, Position: item.Position})
		}
		return result

	case *yamlmeta.Array:
		result := &yamlmeta.Array{Position: typedBody.Position}
		for _, item := range typedBody.Items {
			result.Items = append(result.Items, &yamlmeta.ArrayItem{Value: substitute(item.Value, bindings), Position: item.Position})
		}
		return result

	default:
		return body
	}
}
