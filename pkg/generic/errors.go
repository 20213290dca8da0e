// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"fmt"
	"strings"

	"github.com/aidmat/yamlpp/pkg/filepos"
)

type UnknownTemplateError struct {
	Target   string
	Position *filepos.Position
	// Suggestion is the closest known template name, if any.
	Suggestion string
}

func (e *UnknownTemplateError) Error() string {
	msg := fmt.Sprintf("Expected to find generic template '%s' (%s), but did not", e.Target, e.Position.AsCompactString())
	if len(e.Suggestion) > 0 {
		msg += fmt.Sprintf(" (hint: did you mean '%s'?)", e.Suggestion)
	}
	return msg
}

type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("Generic template cycle detected: %s", strings.Join(e.Chain, " -> "))
}
