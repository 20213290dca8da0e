// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0
package orderedmap_test

import (
	"reflect"
	"testing"

	"github.com/aidmat/yamlpp/pkg/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestFromUnorderedMaps(t *testing.T) {
	inputA := map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}
	inputB := map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}

	orderedmap.Conversion{Object: inputA}.FromUnorderedMaps()

	if !reflect.DeepEqual(inputA, inputB) {
		t.Errorf("Nested object was modified. Got: %v, Expected: %v", inputA, inputB)
	}
}

func TestFromUnorderedMapsSortsKeys(t *testing.T) {
	input := map[string]interface{}{
		"servers": []map[string]interface{}{{"url": "a"}},
		"info":    map[string]interface{}{"title": "API", "version": "1"},
		"anchor":  int64(1),
	}

	result := orderedmap.Conversion{Object: input}.FromUnorderedMaps().(*orderedmap.Map)
	require.Equal(t, []interface{}{"anchor", "info", "servers"}, result.Keys())

	servers, _ := result.Get("servers")
	require.Len(t, servers, 1)
	server := servers.([]interface{})[0].(*orderedmap.Map)
	url, _ := server.Get("url")
	require.Equal(t, "a", url)
}

func TestAsUnorderedStringMaps(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("a", []interface{}{orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: 1, Value: "one"}})})

	result := orderedmap.Conversion{Object: m}.AsUnorderedStringMaps()
	require.Equal(t, map[string]interface{}{
		"a": []interface{}{map[string]interface{}{"1": "one"}},
	}, result)
}
