// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/directive"
	"github.com/aidmat/yamlpp/pkg/filepos"
	"github.com/aidmat/yamlpp/pkg/orderedmap"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
)

type Template struct {
	Name     string
	Body     interface{}
	Position *filepos.Position
}

// Templates is a flat, unscoped table of definitions.
type Templates struct {
	defs *orderedmap.Map
}

func NewTemplates() *Templates {
	return &Templates{defs: orderedmap.NewMap()}
}

// Extract collects every definition found in tree. The tree is not modified;
// definitions are dropped from the output by the Instantiator.
func Extract(tree interface{}, ui ui.UI) *Templates {
	templates := NewTemplates()
	extractFrom(tree, templates, ui)
	return templates
}

func extractFrom(val interface{}, templates *Templates, ui ui.UI) {
	switch typedVal := val.(type) {
	case *yamlmeta.Map:
		for _, item := range typedVal.Items {
			name, isDef := directive.DefinitionName(item.Key)
			if !isDef {
				extractFrom(item.Value, templates, ui)
				continue
			}

			if prev, found := templates.Get(name); found {
				ui.Warnf("Warning: generic template '%s' is defined more than once (%s, %s), using the latter\n",
					name, prev.Position.AsCompactString(), item.Position.AsCompactString())
			}
			ui.Debugf("- %s\n", name)
			templates.Add(&Template{Name: name, Body: item.Value, Position: item.Position})
		}

	case *yamlmeta.Array:
		for _, item := range typedVal.Items {
			extractFrom(item.Value, templates, ui)
		}
	}
}

// Add registers tmpl, replacing a definition with the same name.
func (t *Templates) Add(tmpl *Template) {
	t.defs.Set(tmpl.Name, tmpl)
}

func (t *Templates) Get(name string) (*Template, bool) {
	val, found := t.defs.Get(name)
	if !found {
		return nil, false
	}
	return val.(*Template), true
}

// Names lists template names in discovery order.
func (t *Templates) Names() []string {
	var names []string
	t.defs.Iterate(func(k, _ interface{}) {
		names = append(names, k.(string))
	})
	return names
}

func (t *Templates) Len() int { return t.defs.Len() }
