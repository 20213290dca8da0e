// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/pflag"
)

// FormatFlag is validated when the command runs (see cobrautil.ResolveFlagsForCmd).
type FormatFlag struct {
	value  string
	format yamlmeta.Format
}

var _ pflag.Value = &FormatFlag{}
var _ cobrautil.ResolvableFlag = &FormatFlag{}

func NewFormatFlag(format yamlmeta.Format) FormatFlag {
	return FormatFlag{value: string(format), format: format}
}

func (f *FormatFlag) Set(val string) error {
	f.value = val
	return nil
}

func (f *FormatFlag) Type() string   { return "string" }
func (f *FormatFlag) String() string { return f.value }

func (f *FormatFlag) Resolve() error {
	format, err := yamlmeta.ParseFormat(f.value)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *FormatFlag) Format() yamlmeta.Format { return f.format }
