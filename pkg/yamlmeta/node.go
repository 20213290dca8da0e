// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"github.com/aidmat/yamlpp/pkg/filepos"
)

func (n *Map) GetPosition() *filepos.Position   { return n.Position }
func (n *Array) GetPosition() *filepos.Position { return n.Position }

func (n *Map) sealed()   {}
func (n *Array) sealed() {}

func (n *Map) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item.Value)
	}
	return result
}

func (n *Array) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item.Value)
	}
	return result
}

// Item returns the item stored under key (keys compare as normalized scalars).
func (n *Map) Item(key interface{}) (*MapItem, bool) {
	key = normalizeScalar(key)
	for _, item := range n.Items {
		if normalizeScalar(item.Key) == key {
			return item, true
		}
	}
	return nil, false
}

func (n *Map) Get(key interface{}) (interface{}, bool) {
	item, found := n.Item(key)
	if !found {
		return nil, false
	}
	return item.Value, true
}

func (n *Map) Has(key interface{}) bool {
	_, found := n.Item(key)
	return found
}

// Set replaces the value of an existing key in place or appends a new item.
func (n *Map) Set(key, value interface{}) {
	if item, found := n.Item(key); found {
		item.Value = value
		return
	}
	n.Items = append(n.Items, &MapItem{Key: key, Value: value, Position: filepos.NewUnknownPosition()})
}

func (n *Map) Keys() []interface{} {
	var keys []interface{}
	for _, item := range n.Items {
		keys = append(keys, item.Key)
	}
	return keys
}

func (n *Map) Len() int   { return len(n.Items) }
func (n *Array) Len() int { return len(n.Items) }
