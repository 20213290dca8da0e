// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"fmt"
	"io"
	"strings"
)

type writer struct {
	writer    io.Writer
	lastChunk writerChunk
}

type writerChunk struct {
	Content string
	Indent  string
	// AllowsInlining lets the next chunk continue on the same line ("- a: 1").
	AllowsInlining bool
	InliningSpacer string
}

func newWriter(w io.Writer) *writer {
	return &writer{writer: w}
}

func (w *writer) AddContent(chunk writerChunk) {
	defer func() {
		w.lastChunk = chunk
	}()

	if w.lastChunk.AllowsInlining {
		fmt.Fprint(w.writer, w.lastChunk.InliningSpacer)
	} else {
		fmt.Fprint(w.writer, chunk.Indent)
	}

	fmt.Fprintf(w.writer, "%s", w.indentMultiline(chunk))

	if !chunk.AllowsInlining {
		fmt.Fprint(w.writer, "\n")
	}
}

func (w *writer) indentMultiline(chunk writerChunk) string {
	if !strings.Contains(chunk.Content, "\n") {
		return chunk.Content
	}

	result := []string{}
	for i, piece := range strings.Split(chunk.Content, "\n") {
		if i != 0 {
			piece = chunk.Indent + piece
		}
		result = append(result, piece)
	}
	return strings.Join(result, "\n")
}
