// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/aidmat/yamlpp/pkg/cmd"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
)

func main() {
	command := cmd.NewDefaultYamlppCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "yamlpp: Error: %s\n", uierrs.NewSemiStructuredError(err))
		os.Exit(1)
	}
}
