// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta_test

import (
	"fmt"
	"testing"

	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/stretchr/testify/require"
)

func TestParserScalars(t *testing.T) {
	data := `
null_val: ~
bool_val: true
int_val: 42
hex_val: 0x1F
float_val: 1.5
str_val: hello
quoted_int: "42"
date_val: 2001-12-14
`
	docs, err := yamlmeta.NewParser().ParseBytes([]byte(data), "scalars.yml")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	m := docs[0].Value.(*yamlmeta.Map)
	expected := []struct {
		key string
		val interface{}
	}{
		{"null_val", nil},
		{"bool_val", true},
		{"int_val", int64(42)},
		{"hex_val", int64(31)},
		{"float_val", 1.5},
		{"str_val", "hello"},
		{"quoted_int", "42"},
		{"date_val", "2001-12-14"},
	}

	require.Equal(t, len(expected), m.Len())
	for i, exp := range expected {
		require.Equal(t, exp.key, m.Items[i].Key)
		require.Equal(t, exp.val, m.Items[i].Value, "key %s", exp.key)
	}
}

func TestParserPreservesKeyOrderAndPositions(t *testing.T) {
	data := `zeta: 1
alpha:
  - beta: 2
  - gamma
`
	docs, err := yamlmeta.NewParser().ParseBytes([]byte(data), "order.yml")
	require.NoError(t, err)

	m := docs[0].Value.(*yamlmeta.Map)
	require.Equal(t, []interface{}{"zeta", "alpha"}, m.Keys())
	require.Equal(t, "order.yml:1", m.Items[0].Position.AsCompactString())
	require.Equal(t, "order.yml:2", m.Items[1].Position.AsCompactString())

	arr := m.Items[1].Value.(*yamlmeta.Array)
	require.Equal(t, 2, arr.Len())
	require.Equal(t, "order.yml:3", arr.Items[0].Position.AsCompactString())
	require.Equal(t, "gamma", arr.Items[1].Value)
}

func TestParserExpandsAliasesIntoCopies(t *testing.T) {
	data := `
base: &base
  type: string
first: *base
second: *base
`
	docs, err := yamlmeta.NewParser().ParseBytes([]byte(data), "")
	require.NoError(t, err)

	m := docs[0].Value.(*yamlmeta.Map)
	first, _ := m.Get("first")
	second, _ := m.Get("second")

	require.True(t, yamlmeta.Equal(first, second))
	require.NotSame(t, first, second)
}

func TestParserMultipleDocuments(t *testing.T) {
	docs, err := yamlmeta.NewParser().ParseBytes([]byte("a: 1\n---\nb: 2\n"), "")
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestParserErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := yamlmeta.NewParser().ParseBytes([]byte(""), "empty.yml")
		require.EqualError(t, err, "Expected to find at least one YAML document, but found none")
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := yamlmeta.NewParser().ParseBytes([]byte("a: [1, 2"), "bad.yml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "Unmarshaling YAML")
	})

	t.Run("duplicate keys", func(t *testing.T) {
		_, err := yamlmeta.NewParser().ParseBytes([]byte("a: 1\nb: 2\na: 3\n"), "dup.yml")
		require.EqualError(t, err, "Duplicate map key 'a' (dup.yml:3)")
	})

	t.Run("self-referencing alias", func(t *testing.T) {
		_, err := yamlmeta.NewParser().ParseBytes([]byte("a: &x\n  b: *x\n"), "self.yml")
		require.EqualError(t, err, "Expected alias 'x' (self.yml:2) to not refer to itself")
	})

	t.Run("alias chain expanding past the node limit", func(t *testing.T) {
		data := "l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n"
		for i := 1; i < 8; i++ {
			data += fmt.Sprintf("l%d: &l%d [", i, i)
			for j := 0; j < 10; j++ {
				if j > 0 {
					data += ", "
				}
				data += fmt.Sprintf("*l%d", i-1)
			}
			data += "]\n"
		}

		_, err := yamlmeta.NewParser().ParseBytes([]byte(data), "laughs.yml")
		require.Error(t, err)
		require.Contains(t, err.Error(), fmt.Sprintf("Expected document to expand to at most %d nodes", yamlmeta.MaxExpandedNodes))
	})

	t.Run("non-scalar keys", func(t *testing.T) {
		_, err := yamlmeta.NewParser().ParseBytes([]byte("? [a, b]\n: 1\n"), "complex.yml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "Expected map key to be a scalar (complex.yml:")
	})
}
