// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

// Create writes the file, creating missing parent directories.
func (f OutputFile) Create(fs billy.Filesystem) error {
	err := fs.MkdirAll(filepath.Dir(f.path), 0755)
	if err != nil {
		return err
	}

	return util.WriteFile(fs, f.path, f.data, 0644)
}
