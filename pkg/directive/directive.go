// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package directive

import (
	"fmt"
	"strings"

	"github.com/aidmat/yamlpp/pkg/filepos"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
)

const (
	IncludeKey    = "$include"
	GenericKey    = "$generic"
	GenericSuffix = "<GENERIC>"
	TargetKey     = "target"
)

// Include is a parsed $include directive.
type Include struct {
	Pattern  string
	Position *filepos.Position
	// Ignored lists other keys found next to $include.
	Ignored []interface{}
}

// Invocation is a parsed $generic directive.
type Invocation struct {
	Target   string
	Bindings []Binding
	Position *filepos.Position
	Ignored  []interface{}
}

// Binding maps a placeholder name to the value supplied at the invocation site.
type Binding struct {
	Name  string
	Value interface{}
}

// AsInclude returns the include directive held by m, if any.
func AsInclude(m *yamlmeta.Map) (*Include, bool, error) {
	item, found := m.Item(IncludeKey)
	if !found {
		return nil, false, nil
	}

	pattern, ok := item.Value.(string)
	if !ok {
		return nil, true, &MalformedDirectiveError{
			Directive: IncludeKey,
			Position:  item.Position,
			Reason:    fmt.Sprintf("expected value to be a string glob pattern, but was %s", yamlmeta.KindOf(item.Value)),
		}
	}
	if len(pattern) == 0 {
		return nil, true, &MalformedDirectiveError{
			Directive: IncludeKey,
			Position:  item.Position,
			Reason:    "expected glob pattern to be non-empty",
		}
	}

	return &Include{Pattern: pattern, Position: item.Position, Ignored: siblingKeys(m, IncludeKey)}, true, nil
}

// AsInvocation returns the generic invocation held by m, if any.
func AsInvocation(m *yamlmeta.Map) (*Invocation, bool, error) {
	item, found := m.Item(GenericKey)
	if !found {
		return nil, false, nil
	}

	bindingSet, ok := item.Value.(*yamlmeta.Map)
	if !ok {
		return nil, true, &MalformedDirectiveError{
			Directive: GenericKey,
			Position:  item.Position,
			Reason:    fmt.Sprintf("expected value to be a map, but was %s", yamlmeta.KindOf(item.Value)),
		}
	}

	inv := &Invocation{Position: item.Position, Ignored: siblingKeys(m, GenericKey)}
	var foundTarget bool

	for _, binding := range bindingSet.Items {
		name := keyAsString(binding.Key)
		if name == TargetKey {
			target, ok := binding.Value.(string)
			if !ok {
				return nil, true, &MalformedDirectiveError{
					Directive: GenericKey,
					Position:  binding.Position,
					Reason:    fmt.Sprintf("expected '%s' to be a string, but was %s", TargetKey, yamlmeta.KindOf(binding.Value)),
				}
			}
			inv.Target = target
			foundTarget = true
			continue
		}
		inv.Bindings = append(inv.Bindings, Binding{Name: name, Value: binding.Value})
	}

	if !foundTarget {
		return nil, true, &MalformedDirectiveError{
			Directive: GenericKey,
			Position:  item.Position,
			Reason:    fmt.Sprintf("expected '%s' key naming the template", TargetKey),
		}
	}

	return inv, true, nil
}

// DefinitionName returns the template name when key marks a generic definition.
func DefinitionName(key interface{}) (string, bool) {
	str, ok := key.(string)
	if !ok || !strings.HasSuffix(str, GenericSuffix) {
		return "", false
	}
	return str[:len(str)-len(GenericSuffix)], true
}

func siblingKeys(m *yamlmeta.Map, directiveKey string) []interface{} {
	var result []interface{}
	for _, item := range m.Items {
		if item.Key != directiveKey {
			result = append(result, item.Key)
		}
	}
	return result
}

func keyAsString(key interface{}) string {
	if str, ok := key.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", key)
}
