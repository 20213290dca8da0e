// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package directive_test

import (
	"errors"
	"testing"

	"github.com/aidmat/yamlpp/pkg/directive"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/stretchr/testify/require"
)

func parseMap(t *testing.T, data string) *yamlmeta.Map {
	docs, err := yamlmeta.NewParser().ParseBytes([]byte(data), "doc.yml")
	require.NoError(t, err)
	return docs[0].Value.(*yamlmeta.Map)
}

func TestAsInclude(t *testing.T) {
	t.Run("not a directive", func(t *testing.T) {
		_, found, err := directive.AsInclude(parseMap(t, "a: 1"))
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("with siblings", func(t *testing.T) {
		inc, found, err := directive.AsInclude(parseMap(t, "note: x\n$include: paths/*.yaml\n"))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "paths/*.yaml", inc.Pattern)
		require.Equal(t, "doc.yml:2", inc.Position.AsCompactString())
		require.Equal(t, []interface{}{"note"}, inc.Ignored)
	})

	t.Run("non-string pattern", func(t *testing.T) {
		_, found, err := directive.AsInclude(parseMap(t, "$include: [a, b]"))
		require.True(t, found)
		require.EqualError(t, err, "Malformed '$include' directive (doc.yml:1): expected value to be a string glob pattern, but was array")

		var malformedErr *directive.MalformedDirectiveError
		require.True(t, errors.As(err, &malformedErr))
	})

	t.Run("empty pattern", func(t *testing.T) {
		_, _, err := directive.AsInclude(parseMap(t, `$include: ""`))
		require.EqualError(t, err, "Malformed '$include' directive (doc.yml:1): expected glob pattern to be non-empty")
	})
}

func TestAsInvocation(t *testing.T) {
	t.Run("bindings in order", func(t *testing.T) {
		inv, found, err := directive.AsInvocation(parseMap(t, `
$generic:
  kind: string
  target: Widget
  size: 3
`))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "Widget", inv.Target)
		require.Equal(t, []directive.Binding{{Name: "kind", Value: "string"}, {Name: "size", Value: int64(3)}}, inv.Bindings)
		require.Empty(t, inv.Ignored)
	})

	t.Run("value is not a map", func(t *testing.T) {
		_, _, err := directive.AsInvocation(parseMap(t, "$generic: Widget"))
		require.EqualError(t, err, "Malformed '$generic' directive (doc.yml:1): expected value to be a map, but was string")
	})

	t.Run("missing target", func(t *testing.T) {
		_, _, err := directive.AsInvocation(parseMap(t, "$generic:\n  kind: string\n"))
		require.EqualError(t, err, "Malformed '$generic' directive (doc.yml:1): expected 'target' key naming the template")
	})

	t.Run("non-string target", func(t *testing.T) {
		_, _, err := directive.AsInvocation(parseMap(t, "$generic:\n  target: 12\n"))
		require.EqualError(t, err, "Malformed '$generic' directive (doc.yml:2): expected 'target' to be a string, but was integer")
	})
}

func TestDefinitionName(t *testing.T) {
	name, ok := directive.DefinitionName("Page<GENERIC>")
	require.True(t, ok)
	require.Equal(t, "Page", name)

	name, ok = directive.DefinitionName("<GENERIC>")
	require.True(t, ok)
	require.Equal(t, "", name)

	_, ok = directive.DefinitionName("Page<GENERIC> ")
	require.False(t, ok)

	_, ok = directive.DefinitionName(12)
	require.False(t, ok)
}
