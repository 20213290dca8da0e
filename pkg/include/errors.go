// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package include

import (
	"fmt"
	"strings"

	"github.com/aidmat/yamlpp/pkg/filepos"
)

// ResolutionError aborts include resolution. Err is either a *files.LoadError
// or a *CycleError.
type ResolutionError struct {
	Pattern  string
	Path     string
	Position *filepos.Position
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("Resolving include '%s' (%s): %s", e.Pattern, e.Position.AsCompactString(), e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("Include cycle detected: %s", strings.Join(e.Chain, " -> "))
}
