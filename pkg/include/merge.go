// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package include

import (
	"github.com/aidmat/yamlpp/pkg/filepos"
	"github.com/aidmat/yamlpp/pkg/orderedmap"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
)

// Merge folds docs into a single map. Arrays are flattened depth-first and
// values that are neither maps nor arrays contribute nothing.
func Merge(docs []interface{}, pos *filepos.Position) *yamlmeta.Map {
	acc := orderedmap.NewMap()

	for _, doc := range docs {
		mergeInto(acc, doc)
	}

	result := &yamlmeta.Map{Position: pos}

	acc.Iterate(func(_, v interface{}) {
		result.Items = append(result.Items, v.(*yamlmeta.MapItem))
	})

	return result
}

func mergeInto(acc *orderedmap.Map, doc interface{}) {
	switch typedDoc := doc.(type) {
	case *yamlmeta.Map:
		for _, item := range typedDoc.Items {
			if existing, found := acc.Get(item.Key); found {
				// first occurrence keeps its place, last value wins
				existing.(*yamlmeta.MapItem).Value = item.Value
				continue
			}
			acc.Set(item.Key, &yamlmeta.MapItem{Key: item.Key, Value: item.Value, Position: item.Position})
		}

	case *yamlmeta.Array:
		for _, item := range typedDoc.Items {
			mergeInto(acc, item.Value)
		}
	}
}
