// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
)

// LoadError is returned when a file cannot be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Loading file '%s': %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
