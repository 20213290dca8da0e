// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	lineNum int // 1 based
	column  int // 1 based; 0 when not known
	file    string
	known   bool
}

func NewPosition(lineNum int) *Position {
	if lineNum <= 0 {
		panic("Lines are 1 based")
	}
	return &Position{lineNum: lineNum, known: true}
}

// NewPositionInFile returns the Position of line "lineNum" and column "column" within the file "file".
// A column of zero means the column is not known.
func NewPositionInFile(file string, lineNum, column int) *Position {
	p := NewPosition(lineNum)
	p.file = file
	if column > 0 {
		p.column = column
	}
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

// NewUnknownPositionInFile produces a Position of a known file at an unknown line.
func NewUnknownPositionInFile(file string) *Position {
	return &Position{file: file}
}

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) LineNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	return p.lineNum
}

func (p *Position) Column() int {
	if p == nil {
		return 0
	}
	return p.column
}

func (p *Position) GetFile() string {
	if p == nil {
		return ""
	}
	return p.file
}

func (p *Position) AsString() string {
	return "line " + p.AsCompactString()
}

// AsCompactString renders the position as "file:line" ("file:?" when the line is unknown).
func (p *Position) AsCompactString() string {
	filePrefix := p.GetFile()
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.IsKnown() {
		return fmt.Sprintf("%s%d", filePrefix, p.LineNum())
	}
	return fmt.Sprintf("%s?", filePrefix)
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	newPos := *p
	return &newPos
}
