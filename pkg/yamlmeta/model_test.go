// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta_test

import (
	"testing"

	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, yamlmeta.KindNull, yamlmeta.KindOf(nil))
	require.Equal(t, yamlmeta.KindBool, yamlmeta.KindOf(false))
	require.Equal(t, yamlmeta.KindInt, yamlmeta.KindOf(int64(1)))
	require.Equal(t, yamlmeta.KindInt, yamlmeta.KindOf(uint64(1)))
	require.Equal(t, yamlmeta.KindFloat, yamlmeta.KindOf(1.0))
	require.Equal(t, yamlmeta.KindString, yamlmeta.KindOf("s"))
	require.Equal(t, yamlmeta.KindArray, yamlmeta.KindOf(&yamlmeta.Array{}))
	require.Equal(t, yamlmeta.KindMap, yamlmeta.KindOf(&yamlmeta.Map{}))
	require.Panics(t, func() { yamlmeta.KindOf(struct{}{}) })
}

func TestMapSetUpdatesInPlace(t *testing.T) {
	m := &yamlmeta.Map{}
	m.Set("x", int64(1))
	m.Set("y", int64(2))
	m.Set("x", int64(3))

	require.Equal(t, []interface{}{"x", "y"}, m.Keys())
	val, found := m.Get("x")
	require.True(t, found)
	require.Equal(t, int64(3), val)

	// integer keys compare by value regardless of Go type
	m.Set(int64(200), "OK")
	require.True(t, m.Has(200))
}

func TestDeepCopyIsIndependent(t *testing.T) {
	orig := &yamlmeta.Map{}
	orig.Set("list", &yamlmeta.Array{Items: []*yamlmeta.ArrayItem{{Value: "a"}}})

	cp := yamlmeta.DeepCopy(orig).(*yamlmeta.Map)
	require.True(t, yamlmeta.Equal(orig, cp))

	list, _ := cp.Get("list")
	list.(*yamlmeta.Array).Items[0].Value = "b"
	require.False(t, yamlmeta.Equal(orig, cp))

	origList, _ := orig.Get("list")
	require.Equal(t, "a", origList.(*yamlmeta.Array).Items[0].Value)
}

func TestEqual(t *testing.T) {
	a := &yamlmeta.Map{}
	a.Set("x", int64(1))
	a.Set("y", int64(2))

	b := &yamlmeta.Map{}
	b.Set("y", int64(2))
	b.Set("x", int64(1))

	require.False(t, yamlmeta.Equal(a, b), "key order is significant")
	require.True(t, yamlmeta.Equal(int64(5), 5))
	require.False(t, yamlmeta.Equal("1", int64(1)))
	require.False(t, yamlmeta.Equal(nil, &yamlmeta.Map{}))
}
