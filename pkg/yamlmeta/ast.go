// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"github.com/aidmat/yamlpp/pkg/filepos"
)

type Node interface {
	GetPosition() *filepos.Position
	GetValues() []interface{} // ie children

	DeepCopyAsInterface() interface{}

	sealed() // limit the concrete types of Node to the containers allowed in YAML.
}

var _ = []Node{&Map{}, &Array{}}

type Document struct {
	Value    interface{}
	Position *filepos.Position
}

type Map struct {
	Items    []*MapItem
	Position *filepos.Position
}

type MapItem struct {
	Key      interface{}
	Value    interface{}
	Position *filepos.Position
}

type Array struct {
	Items    []*ArrayItem
	Position *filepos.Position
}

type ArrayItem struct {
	Value    interface{}
	Position *filepos.Position
}
