// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aidmat/yamlpp/pkg/orderedmap"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var formats = []Format{FormatYAML, FormatJSON, FormatTOML}

func ParseFormat(str string) (Format, error) {
	for _, format := range formats {
		if strings.EqualFold(str, string(format)) {
			return format, nil
		}
	}
	var names []string
	for _, format := range formats {
		names = append(names, string(format))
	}
	return "", fmt.Errorf("Unknown output format '%s' (expected one of: %s)", str, strings.Join(names, ", "))
}

// AsBytes serializes val in the given format.
func AsBytes(val interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		return AsYAMLBytes(val)
	case FormatJSON:
		return AsJSONBytes(val)
	case FormatTOML:
		return AsTOMLBytes(val)
	default:
		return nil, fmt.Errorf("Unknown output format '%s'", format)
	}
}

func AsYAMLBytes(val interface{}) ([]byte, error) {
	node, err := asYAMLNode(val)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	err = enc.Encode(node)
	if err != nil {
		return nil, fmt.Errorf("Marshaling YAML: %s", err)
	}
	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("Marshaling YAML: %s", err)
	}

	return buf.Bytes(), nil
}

func asYAMLNode(val interface{}) (*yaml.Node, error) {
	switch typedVal := val.(type) {
	case *Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, item := range typedVal.Items {
			keyNode, err := asYAMLNode(item.Key)
			if err != nil {
				return nil, err
			}
			valNode, err := asYAMLNode(item.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil

	case *Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typedVal.Items {
			itemNode, err := asYAMLNode(item.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil

	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil

	default:
		KindOf(val) // panics on values outside of the document model

		node := &yaml.Node{}
		err := node.Encode(val)
		if err != nil {
			return nil, fmt.Errorf("Marshaling scalar '%v': %s", val, err)
		}
		return node, nil
	}
}

// AsJSONBytes serializes val as indented JSON keeping map key order.
// Non-string map keys are rendered with their textual representation.
func AsJSONBytes(val interface{}) ([]byte, error) {
	compact := new(bytes.Buffer)

	err := writeJSON(compact, val)
	if err != nil {
		return nil, err
	}

	result := new(bytes.Buffer)

	err = json.Indent(result, compact.Bytes(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("Marshaling JSON: %s", err)
	}
	result.WriteString("\n")

	return result.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, val interface{}) error {
	switch typedVal := val.(type) {
	case *Map:
		buf.WriteString("{")
		for i, item := range typedVal.Items {
			if i > 0 {
				buf.WriteString(",")
			}
			keyBs, err := json.Marshal(keyAsString(item.Key))
			if err != nil {
				return fmt.Errorf("Marshaling JSON key '%v': %s", item.Key, err)
			}
			buf.Write(keyBs)
			buf.WriteString(":")

			err = writeJSON(buf, item.Value)
			if err != nil {
				return err
			}
		}
		buf.WriteString("}")
		return nil

	case *Array:
		buf.WriteString("[")
		for i, item := range typedVal.Items {
			if i > 0 {
				buf.WriteString(",")
			}
			err := writeJSON(buf, item.Value)
			if err != nil {
				return err
			}
		}
		buf.WriteString("]")
		return nil

	default:
		KindOf(val)

		bs, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("Marshaling JSON value '%v': %s", val, err)
		}
		buf.Write(bs)
		return nil
	}
}

// AsTOMLBytes serializes a root map as TOML. TOML has no null, so null
// entries are left out; key order follows the TOML encoder (sorted).
func AsTOMLBytes(val interface{}) ([]byte, error) {
	if _, ok := val.(*Map); !ok {
		return nil, fmt.Errorf("Expected document root to be a map for TOML output, but was %s", KindOf(val))
	}

	obj := orderedmap.Conversion{Object: convertToGo(val, true)}.AsUnorderedStringMaps()

	buf := new(bytes.Buffer)

	err := toml.NewEncoder(buf).Encode(obj)
	if err != nil {
		return nil, fmt.Errorf("Marshaling TOML: %s", err)
	}

	return buf.Bytes(), nil
}

func keyAsString(key interface{}) string {
	if str, ok := key.(string); ok {
		return str
	}
	if key == nil {
		return "null"
	}
	return fmt.Sprintf("%v", key)
}
