// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package files loads documents from a filesystem.
//
// A Loader reads a path from its billy.Filesystem (the OS in production, an
// in-memory filesystem in tests) and parses it according to its extension:
// TOML files are decoded with BurntSushi/toml, everything else (YAML and JSON)
// goes through the yamlmeta parser.
//
// Glob expands include patterns ("paths/*.yaml", "schemas/*/user.yml",
// "{a,b}.yaml") into a sorted list of files so that merging is reproducible
// for a given filesystem state.
package files
