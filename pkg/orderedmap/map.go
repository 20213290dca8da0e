// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"reflect"
)

type Map struct {
	items []MapItem
	// positions of hashable keys; other keys are found by scanning
	index map[interface{}]int
}

type MapItem struct {
	Key   interface{}
	Value interface{}
}

func NewMap() *Map {
	return &Map{index: map[interface{}]int{}}
}

func NewMapWithItems(items []MapItem) *Map {
	m := NewMap()
	for _, item := range items {
		m.Set(item.Key, item.Value)
	}
	return m
}

// Set inserts key at the end, or replaces the value of an existing key in place.
func (m *Map) Set(key, value interface{}) {
	if i, found := m.find(key); found {
		m.items[i].Value = value
		return
	}
	m.items = append(m.items, MapItem{key, value})
	if isHashable(key) {
		if m.index == nil {
			m.index = map[interface{}]int{}
		}
		m.index[key] = len(m.items) - 1
	}
}

func (m *Map) Get(key interface{}) (interface{}, bool) {
	if i, found := m.find(key); found {
		return m.items[i].Value, true
	}
	return nil, false
}

func (m *Map) Delete(key interface{}) bool {
	i, found := m.find(key)
	if !found {
		return false
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.reindex()
	return true
}

func (m *Map) find(key interface{}) (int, bool) {
	if isHashable(key) {
		i, found := m.index[key]
		return i, found
	}
	for i, item := range m.items {
		if reflect.DeepEqual(item.Key, key) {
			return i, true
		}
	}
	return 0, false
}

func (m *Map) reindex() {
	m.index = map[interface{}]int{}
	for i, item := range m.items {
		if isHashable(item.Key) {
			m.index[item.Key] = i
		}
	}
}

func (m *Map) Keys() (keys []interface{}) {
	m.Iterate(func(k, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

func (m *Map) Iterate(iterFunc func(k, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) IterateErr(iterFunc func(k, v interface{}) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) Len() int { return len(m.items) }

func isHashable(key interface{}) bool {
	if key == nil {
		return true
	}
	return reflect.TypeOf(key).Comparable()
}
