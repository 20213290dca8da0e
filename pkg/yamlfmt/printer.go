// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aidmat/yamlpp/pkg/filepos"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
)

type Printer struct {
	writer *writer
}

func NewPrinter(writer io.Writer) *Printer {
	return &Printer{newWriter(writer)}
}

func (p *Printer) Print(val interface{}) {
	p.print(val, whitespace{}, p.writer)
}

func (p *Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, whitespace{}, newWriter(buf))
	return buf.String()
}

func (p *Printer) print(val interface{}, ws whitespace, writer *writer) {
	switch typedVal := val.(type) {
	case *yamlmeta.Map:
		if len(typedVal.Items) == 0 {
			p.printLeaf("{}", ws, writer)
			return
		}
		for _, item := range typedVal.Items {
			suffix := positionSuffix(item.Position)
			key := p.leafValue(item.Key)
			leafVal := p.leafValue(item.Value)

			if !leafVal.IsLeaf || leafVal.IsMultiline() {
				writer.AddContent(writerChunk{
					Indent:  ws.Indent,
					Content: fmt.Sprintf("%s:%s", key.String, suffix),
				})
				p.print(item.Value, ws.NewIndented(), writer)
				continue
			}

			writer.AddContent(writerChunk{
				Indent:  ws.Indent,
				Content: fmt.Sprintf("%s: %s%s", key.String, leafVal.String, suffix),
			})
		}

	case *yamlmeta.Array:
		if len(typedVal.Items) == 0 {
			p.printLeaf("[]", ws, writer)
			return
		}
		for _, item := range typedVal.Items {
			suffix := positionSuffix(item.Position)
			leafVal := p.leafValue(item.Value)

			if !leafVal.IsLeaf || leafVal.IsMultiline() {
				writer.AddContent(writerChunk{
					Indent:         ws.Indent,
					Content:        fmt.Sprintf("-%s", suffix),
					AllowsInlining: len(suffix) == 0,
					InliningSpacer: " ",
				})
				p.print(item.Value, ws.NewIndented(), writer)
				continue
			}

			writer.AddContent(writerChunk{
				Indent:  ws.Indent,
				Content: fmt.Sprintf("- %s%s", leafVal.String, suffix),
			})
		}

	default:
		leafVal := p.leafValue(val)
		p.printLeaf(leafVal.String, ws, writer)
	}
}

func (p *Printer) printLeaf(str string, ws whitespace, writer *writer) {
	writer.AddContent(writerChunk{
		Indent:  ws.Indent,
		Content: str,
	})
}

type printerLeafValue struct {
	String string
	IsLeaf bool
}

func (v printerLeafValue) IsMultiline() bool {
	return strings.Contains(v.String, "\n")
}

func (p *Printer) leafValue(val interface{}) printerLeafValue {
	if _, ok := val.(yamlmeta.Node); ok {
		return printerLeafValue{}
	}

	bs, err := yamlmeta.AsYAMLBytes(val)
	if err != nil {
		panic(fmt.Sprintf("Failed to serialize %T", val))
	}
	return printerLeafValue{
		String: strings.TrimSuffix(string(bs), "\n"),
		IsLeaf: true,
	}
}

func positionSuffix(pos *filepos.Position) string {
	if !pos.IsKnown() {
		return ""
	}
	return " # " + pos.AsCompactString()
}

type whitespace struct {
	Indent string
}

func (w whitespace) NewIndented() whitespace {
	return whitespace{Indent: w.Indent + "  "}
}
