// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aidmat/yamlpp/pkg/filepos"
	"gopkg.in/yaml.v3"
)

// MaxExpandedNodes bounds how many nodes a single document may expand to
// once aliases are inlined.
const MaxExpandedNodes = 1000000

type Parser struct {
	associatedName string

	expanding map[*yaml.Node]bool
	expanded  int
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseBytes parses every document in data. associatedName is recorded in
// node positions (typically the file path).
func (p *Parser) ParseBytes(data []byte, associatedName string) ([]*Document, error) {
	p.associatedName = associatedName

	var docs []*Document

	dec := yaml.NewDecoder(bytes.NewReader(data))

	for {
		var node yaml.Node

		err := dec.Decode(&node)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("Unmarshaling YAML: %s", err)
		}

		p.expanding = map[*yaml.Node]bool{}
		p.expanded = 0

		val, err := p.parse(&node)
		if err != nil {
			return nil, err
		}

		docs = append(docs, &Document{Value: val, Position: p.newPosition(&node)})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("Expected to find at least one YAML document, but found none")
	}

	return docs, nil
}

func (p *Parser) parse(node *yaml.Node) (interface{}, error) {
	p.expanded++
	if p.expanded > MaxExpandedNodes {
		return nil, fmt.Errorf("Expected document to expand to at most %d nodes (%s)",
			MaxExpandedNodes, p.newPosition(node).AsCompactString())
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return p.parse(node.Content[0])

	case yaml.MappingNode:
		result := &Map{Position: p.newPosition(node)}
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			key, err := p.parseKey(keyNode)
			if err != nil {
				return nil, err
			}
			if result.Has(key) {
				return nil, fmt.Errorf("Duplicate map key '%v' (%s)", key, p.newPosition(keyNode).AsCompactString())
			}

			val, err := p.parse(valNode)
			if err != nil {
				return nil, err
			}

			result.Items = append(result.Items, &MapItem{
				Key:      key,
				Value:    val,
				Position: p.newPosition(keyNode),
			})
		}
		return result, nil

	case yaml.SequenceNode:
		result := &Array{Position: p.newPosition(node)}
		for _, itemNode := range node.Content {
			val, err := p.parse(itemNode)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &ArrayItem{
				Value:    val,
				Position: p.newPosition(itemNode),
			})
		}
		return result, nil

	case yaml.AliasNode:
		// each alias expands into its own copy of the anchored value
		return p.parseAlias(node, p.parse)

	case yaml.ScalarNode:
		return p.parseScalar(node)

	default:
		return nil, fmt.Errorf("Unexpected YAML node kind %d (%s)", node.Kind, p.newPosition(node).AsCompactString())
	}
}

func (p *Parser) parseKey(node *yaml.Node) (interface{}, error) {
	if node.Kind == yaml.AliasNode {
		return p.parseAlias(node, p.parseKey)
	}
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("Expected map key to be a scalar (%s)", p.newPosition(node).AsCompactString())
	}
	return p.parseScalar(node)
}

func (p *Parser) parseAlias(node *yaml.Node, parseFunc func(*yaml.Node) (interface{}, error)) (interface{}, error) {
	if node.Alias == nil {
		return nil, fmt.Errorf("Expected alias '%s' to refer to an anchor (%s)", node.Value, p.newPosition(node).AsCompactString())
	}
	if p.expanding[node.Alias] {
		return nil, fmt.Errorf("Expected alias '%s' (%s) to not refer to itself", node.Value, p.newPosition(node).AsCompactString())
	}

	p.expanding[node.Alias] = true
	defer delete(p.expanding, node.Alias)

	return parseFunc(node.Alias)
}

func (p *Parser) parseScalar(node *yaml.Node) (interface{}, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil

	case "!!bool":
		var val bool
		if err := node.Decode(&val); err != nil {
			return nil, p.scalarErr(node, err)
		}
		return val, nil

	case "!!int":
		var val interface{}
		if err := node.Decode(&val); err != nil {
			return nil, p.scalarErr(node, err)
		}
		return convertScalar(val), nil

	case "!!float":
		var val float64
		if err := node.Decode(&val); err != nil {
			return nil, p.scalarErr(node, err)
		}
		return val, nil

	default:
		// strings, timestamps, binary and custom tags keep their literal text
		return node.Value, nil
	}
}

func (p *Parser) scalarErr(node *yaml.Node, err error) error {
	return fmt.Errorf("Decoding scalar '%s' (%s): %s", node.Value, p.newPosition(node).AsCompactString(), err)
}

func (p *Parser) newPosition(node *yaml.Node) *filepos.Position {
	if node.Line <= 0 {
		return filepos.NewUnknownPositionInFile(p.associatedName)
	}
	return filepos.NewPositionInFile(p.associatedName, node.Line, node.Column)
}
