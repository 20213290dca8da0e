// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

func (m *Map) DeepCopyAsInterface() interface{}   { return m.DeepCopy() }
func (a *Array) DeepCopyAsInterface() interface{} { return a.DeepCopy() }

func (m *Map) DeepCopy() *Map {
	newItems := make([]*MapItem, 0, len(m.Items))
	for _, item := range m.Items {
		newItems = append(newItems, item.DeepCopy())
	}
	return &Map{Items: newItems, Position: m.Position.DeepCopy()}
}

func (mi *MapItem) DeepCopy() *MapItem {
	return &MapItem{
		Key:      mi.Key,
		Value:    DeepCopy(mi.Value),
		Position: mi.Position.DeepCopy(),
	}
}

func (a *Array) DeepCopy() *Array {
	newItems := make([]*ArrayItem, 0, len(a.Items))
	for _, item := range a.Items {
		newItems = append(newItems, item.DeepCopy())
	}
	return &Array{Items: newItems, Position: a.Position.DeepCopy()}
}

func (ai *ArrayItem) DeepCopy() *ArrayItem {
	return &ArrayItem{
		Value:    DeepCopy(ai.Value),
		Position: ai.Position.DeepCopy(),
	}
}

// DeepCopy copies any document value; scalars are returned as is.
func DeepCopy(val interface{}) interface{} {
	if node, ok := val.(Node); ok {
		return node.DeepCopyAsInterface()
	}
	return val
}
