// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to yamlpp's commands -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing yamlpp).

The root command preprocesses one document:

	$ yamlpp api/root.yml -o api.yaml -v

For a list of commands run:

	$ yamlpp help
*/
package cmd
