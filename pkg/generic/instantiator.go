// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/directive"
	"github.com/aidmat/yamlpp/pkg/spell"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
)

type Instantiator struct {
	templates *Templates
	ui        ui.UI
}

func NewInstantiator(templates *Templates, ui ui.UI) *Instantiator {
	return &Instantiator{templates: templates, ui: ui}
}

// Instantiate returns a copy of tree with invocations expanded and
// definitions removed.
func (i *Instantiator) Instantiate(tree interface{}) (interface{}, error) {
	return i.instantiate(tree, nil)
}

func (i *Instantiator) instantiate(val interface{}, chain []string) (interface{}, error) {
	switch typedVal := val.(type) {
	case *yamlmeta.Map:
		inv, isInvocation, err := directive.AsInvocation(typedVal)
		if err != nil {
			return nil, err
		}
		if isInvocation {
			return i.invoke(inv, chain)
		}

		result := &yamlmeta.Map{Position: typedVal.Position}
		for _, item := range typedVal.Items {
			if _, isDef := directive.DefinitionName(item.Key); isDef {
				continue
			}
			newVal, err := i.instantiate(item.Value, chain)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &yamlmeta.MapItem{Key: item.Key, Value: newVal, Position: item.Position})
		}
		return result, nil

	case *yamlmeta.Array:
		result := &yamlmeta.Array{Position: typedVal.Position}
		for _, item := range typedVal.Items {
			newVal, err := i.instantiate(item.Value, chain)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &yamlmeta.ArrayItem{Value: newVal, Position: item.Position})
		}
		return result, nil

	default:
		yamlmeta.KindOf(val) // panics on values outside of the document model
		return val, nil
	}
}

func (i *Instantiator) invoke(inv *directive.Invocation, chain []string) (interface{}, error) {
	if len(inv.Ignored) > 0 {
		i.ui.Warnf("Warning: keys %v next to '%s' (%s) are ignored\n",
			inv.Ignored, directive.GenericKey, inv.Position.AsCompactString())
	}

	tmpl, found := i.templates.Get(inv.Target)
	if !found {
		suggestion, _ := spell.Suggest(inv.Target, i.templates.Names())
		return nil, &UnknownTemplateError{Target: inv.Target, Position: inv.Position, Suggestion: suggestion}
	}

	for _, name := range chain {
		if name == inv.Target {
			return nil, &CycleError{Chain: append(append([]string{}, chain...), inv.Target)}
		}
	}

	i.ui.Debugf("Instantiating generic '%s' (%s)\n", inv.Target, inv.Position.AsCompactString())

	// bound values are expanded where the invocation is written
	bindings := map[string]interface{}{}
	for _, binding := range inv.Bindings {
		val, err := i.instantiate(binding.Value, chain)
		if err != nil {
			return nil, err
		}
		bindings[binding.Name] = val
	}

	nextChain := append(append([]string{}, chain...), inv.Target)

	return i.instantiate(substitute(tmpl.Body, bindings), nextChain)
}
