// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package tests holds helpers shared by the package tests: in-memory document
trees, YAML comparisons with readable diffs and randomly generated plain trees.
*/
package tests

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/files"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	fuzz "github.com/google/gofuzz"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"
)

// NewFS returns an in-memory filesystem holding contents (path -> data).
func NewFS(t *testing.T, contents map[string]string) billy.Filesystem {
	memFS := memfs.New()
	for path, data := range contents {
		err := files.NewOutputFile(path, []byte(strings.TrimPrefix(data, "\n"))).Create(memFS)
		require.NoError(t, err)
	}
	return memFS
}

// NewUI returns a quiet UI together with the buffer receiving its warnings.
func NewUI() (ui.UI, *bytes.Buffer) {
	stderr := &bytes.Buffer{}
	return ui.NewCustomWriterTTY(false, &bytes.Buffer{}, stderr), stderr
}

// ParseYAML parses the first document of data.
func ParseYAML(t *testing.T, data string) interface{} {
	docs, err := yamlmeta.NewParser().ParseBytes([]byte(data), "test.yml")
	require.NoError(t, err)
	return docs[0].Value
}

// RequireYAML fails the test when actual does not print as expected.
func RequireYAML(t *testing.T, expected string, actual interface{}) {
	t.Helper()

	bs, err := yamlmeta.AsYAMLBytes(actual)
	require.NoError(t, err)

	err = ExpectEquals(strings.TrimPrefix(expected, "\n"), string(bs))
	if err != nil {
		t.Fatal(err)
	}
}

func ExpectEquals(expectedStr, resultStr string) error {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		return fmt.Errorf("Not equal; diff expected...actual:\n%v", diff)
	}
	return nil
}

type randomNode struct {
	Strings  map[string]string
	Numbers  map[string]int64
	Flags    []bool
	Children []*randomNode
}

// RandomPlainTree generates a document tree that contains no directives,
// definitions or invocations.
func RandomPlainTree(seed int64) interface{} {
	f := fuzz.New().
		RandSource(rand.NewSource(seed)).
		NilChance(0.3).
		NumElements(0, 3).
		MaxDepth(5)

	var root randomNode
	f.Fuzz(&root)

	return root.asTree()
}

func (n *randomNode) asTree() interface{} {
	if n == nil {
		return nil
	}

	result := &yamlmeta.Map{}

	for _, key := range sortedKeys(n.Strings) {
		result.Set(plainKey("s", key), n.Strings[key])
	}
	for _, key := range sortedKeys(n.Numbers) {
		result.Set(plainKey("n", key), n.Numbers[key])
	}
	if len(n.Flags) > 0 {
		flags := &yamlmeta.Array{}
		for _, flag := range n.Flags {
			flags.Items = append(flags.Items, &yamlmeta.ArrayItem{Value: flag})
		}
		result.Set("flags", flags)
	}
	if len(n.Children) > 0 {
		children := &yamlmeta.Array{}
		for _, child := range n.Children {
			children.Items = append(children.Items, &yamlmeta.ArrayItem{Value: child.asTree()})
		}
		result.Set("children", children)
	}

	return result
}

// plainKey prefixes generated keys so that they never look like a directive
// or a definition.
func plainKey(prefix, key string) string {
	return prefix + "_" + strings.ReplaceAll(key, "<GENERIC>", "")
}

func sortedKeys[T any](m map[string]T) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
