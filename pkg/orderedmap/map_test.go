// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"github.com/aidmat/yamlpp/pkg/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMapSetKeepsFirstPosition(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("y", 3)
	m.Set("z", 4)

	require.Equal(t, []interface{}{"x", "y", "z"}, m.Keys())
	val, found := m.Get("y")
	require.True(t, found)
	require.Equal(t, 3, val)
	require.Equal(t, 3, m.Len())
}

func TestMapDeleteReindexes(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}})

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))

	val, found := m.Get("c")
	require.True(t, found)
	require.Equal(t, 3, val)

	m.Set("c", 30)
	require.Equal(t, []interface{}{"b", "c"}, m.Keys())
	val, _ = m.Get("c")
	require.Equal(t, 30, val)
}

func TestMapNonHashableKeys(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set([]interface{}{"a"}, 1)
	m.Set([]interface{}{"a"}, 2)
	m.Set(nil, 3)

	require.Equal(t, 2, m.Len())
	val, found := m.Get([]interface{}{"a"})
	require.True(t, found)
	require.Equal(t, 2, val)

	val, found = m.Get(nil)
	require.True(t, found)
	require.Equal(t, 3, val)
}

func TestMapIterateErrStopsAtFirstError(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "a", Value: 1}, {Key: "b", Value: 2}})

	var seen []interface{}
	err := m.IterateErr(func(k, _ interface{}) error {
		seen = append(seen, k)
		return errStop
	})
	require.Equal(t, errStop, err)
	require.Equal(t, []interface{}{"a"}, seen)
}

type stopErr struct{}

func (stopErr) Error() string { return "stop" }

var errStop error = stopErr{}
