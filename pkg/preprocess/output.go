// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"fmt"
	"io"

	"github.com/aidmat/yamlpp/pkg/files"
	"github.com/go-git/go-billy/v5"
)

const StdoutPath = "-"

// WriteResult writes the serialized result to outPath on fs, or to stdout
// when outPath is StdoutPath.
func WriteResult(fs billy.Filesystem, result *Result, outPath string, stdout io.Writer) error {
	if outPath == StdoutPath {
		_, err := stdout.Write(result.Bytes)
		if err != nil {
			return fmt.Errorf("Writing to stdout: %s", err)
		}
		return nil
	}

	err := files.NewOutputFile(outPath, result.Bytes).Create(fs)
	if err != nil {
		return fmt.Errorf("Writing file '%s': %s", outPath, err)
	}
	return nil
}
