// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/filepos"
	"github.com/aidmat/yamlpp/pkg/orderedmap"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

type Loader struct {
	fs     billy.Filesystem
	ui     ui.UI
	loaded []string
	bases  map[GlobBase]struct{}
}

func NewLoader(fs billy.Filesystem, ui ui.UI) *Loader {
	return &Loader{fs: fs, ui: ui, bases: map[GlobBase]struct{}{}}
}

// Load reads and parses a single document.
func (l *Loader) Load(path string) (interface{}, error) {
	data, err := util.ReadFile(l.fs, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	// recorded before parsing so that a broken file is still watched
	l.loaded = append(l.loaded, path)

	val, err := l.parse(path, data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return val, nil
}

// LoadAll expands pattern and loads every match in order, passing each
// document to visitFunc. It stops at the first failure and returns the
// matched paths.
func (l *Loader) LoadAll(pattern string, visitFunc func(path string, val interface{}) error) ([]string, error) {
	paths, err := l.Glob(pattern)
	if err != nil {
		return nil, err
	}

	l.ui.Debugf("found: %d\n", len(paths))

	for _, path := range paths {
		l.ui.Debugf("[%s]: ", path)

		val, err := l.Load(path)
		if err != nil {
			l.ui.Debugf("failed\n")
			return paths, err
		}

		l.ui.Debugf("OK\n")

		err = visitFunc(path, val)
		if err != nil {
			return paths, err
		}
	}

	return paths, nil
}

// Loaded returns every path loaded so far, without duplicates, sorted.
func (l *Loader) Loaded() []string {
	seen := map[string]struct{}{}
	var result []string
	for _, path := range l.loaded {
		if _, found := seen[path]; found {
			continue
		}
		seen[path] = struct{}{}
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}

func (l *Loader) parse(path string, data []byte) (interface{}, error) {
	switch TypeOf(path) {
	case TypeTOML:
		var obj map[string]interface{}

		_, err := toml.Decode(string(data), &obj)
		if err != nil {
			return nil, fmt.Errorf("Unmarshaling TOML: %s", err)
		}

		ordered := orderedmap.Conversion{Object: obj}.FromUnorderedMaps()
		return yamlmeta.NewASTFromInterfaceWithPosition(ordered, filepos.NewUnknownPositionInFile(path)), nil

	default:
		docs, err := yamlmeta.NewParser().ParseBytes(data, path)
		if err != nil {
			return nil, err
		}
		if len(docs) > 1 {
			l.ui.Warnf("Warning: file '%s' contains %d documents, only the first one is used\n", path, len(docs))
		}
		return docs[0].Value, nil
	}
}
