// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package directive

import (
	"fmt"

	"github.com/aidmat/yamlpp/pkg/filepos"
)

// MalformedDirectiveError reports a directive that does not have the required shape.
type MalformedDirectiveError struct {
	Directive string
	Position  *filepos.Position
	Reason    string
}

func (e *MalformedDirectiveError) Error() string {
	return fmt.Sprintf("Malformed '%s' directive (%s): %s", e.Directive, e.Position.AsCompactString(), e.Reason)
}
