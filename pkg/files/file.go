// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"path/filepath"
	"strings"
)

var (
	yamlExts = []string{".yaml", ".yml"}
	jsonExts = []string{".json"}
	tomlExts = []string{".toml"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeYAML
	TypeJSON
	TypeTOML
)

// TypeOf classifies a path by its extension.
func TypeOf(path string) Type {
	switch {
	case matchesExt(path, yamlExts):
		return TypeYAML
	case matchesExt(path, jsonExts):
		return TypeJSON
	case matchesExt(path, tomlExts):
		return TypeTOML
	default:
		return TypeUnknown
	}
}

func matchesExt(path string, exts []string) bool {
	filename := strings.ToLower(filepath.Base(path))
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
