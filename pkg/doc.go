// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of yamlpp.

Packages are layered; each one depends on the ones listed below it only.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

	./cmd/yamlpp               // a command-line tool

# Commands

The root command preprocesses one document; "version" prints the version.

	(1) => pkg/cmd => (5)

# Pipeline

One run loads the root file, resolves includes, collects and expands
generics and serializes the result. Watch mode repeats runs on change.

	(1) => pkg/preprocess => (6)
	(1) => pkg/watch => (2)

# Directives

	(1) => pkg/include => (6)
	(1) => pkg/generic => (6)
	(2) => pkg/directive => (2)

# Documents

The document tree is built from YAML (gopkg.in/yaml.v3) or TOML
(github.com/BurntSushi/toml) and printed as YAML, JSON or TOML.
Files are read through a go-billy filesystem.

	(3) => pkg/files => (4)
	(7) => pkg/yamlmeta => (2)
	(1) => pkg/yamlfmt => (2)

# Utilities

	(6) => pkg/cmd/ui => (0)
	(6) => pkg/filepos => (0)
	(4) => pkg/orderedmap => (0)
	(1) => pkg/version => (0)
	(1) => pkg/spell => (0)

pkg/tests holds helpers shared by the package tests.
*/
package pkg
