// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"time"

	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/files"
	"github.com/aidmat/yamlpp/pkg/generic"
	"github.com/aidmat/yamlpp/pkg/include"
	"github.com/aidmat/yamlpp/pkg/yamlfmt"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/go-git/go-billy/v5"
)

type Options struct {
	Format yamlmeta.Format
	// DebugTree prints the final tree with source positions to the debug output.
	DebugTree bool
}

type Result struct {
	Value interface{}
	Bytes []byte
	// Files lists every file read during the run, including ones that failed to parse.
	Files []string
	// GlobBases lists the directories include patterns were expanded under.
	GlobBases []files.GlobBase
}

type Pipeline struct {
	fs   billy.Filesystem
	opts Options
	ui   ui.UI
}

func NewPipeline(fs billy.Filesystem, opts Options, ui ui.UI) *Pipeline {
	return &Pipeline{fs: fs, opts: opts, ui: ui}
}

// Run processes the document at rootPath. On failure the returned result
// still lists the files read so far.
func (p *Pipeline) Run(rootPath string) (*Result, error) {
	t1 := time.Now()

	defer func() {
		p.ui.Debugf("total: %s\n", time.Since(t1))
	}()

	loader := files.NewLoader(p.fs, p.ui)
	result := &Result{}

	value, err := p.run(loader, rootPath)
	result.Files = loader.Loaded()
	result.GlobBases = loader.GlobBases()
	if err != nil {
		return result, err
	}

	p.ui.Debugf("Making the %s string\n", p.format())

	bs, err := yamlmeta.AsBytes(value, p.format())
	if err != nil {
		return result, err
	}

	p.ui.Debugf("Output length: %d bytes\n", len(bs))

	result.Value = value
	result.Bytes = bs

	return result, nil
}

func (p *Pipeline) run(loader *files.Loader, rootPath string) (interface{}, error) {
	p.ui.Debugf("Loading the input file\n")

	root, err := loader.Load(rootPath)
	if err != nil {
		return nil, err
	}

	p.ui.Debugf("Start to process includings...\n")

	resolved, err := include.NewResolver(loader, p.ui).ResolveFile(rootPath, root)
	if err != nil {
		return nil, err
	}

	p.ui.Debugf("Processing includings done\n")
	p.ui.Debugf("Search generic definitions...\n")

	templates := generic.Extract(resolved, p.ui)

	p.ui.Debugf("found: %d\n", templates.Len())
	p.ui.Debugf("Processing generics...\n")

	instantiated, err := generic.NewInstantiator(templates, p.ui).Instantiate(resolved)
	if err != nil {
		return nil, err
	}

	p.ui.Debugf("Done\n")

	if p.opts.DebugTree {
		p.ui.Debugf("Resolved tree:\n")
		yamlfmt.NewPrinter(p.ui.DebugWriter()).Print(instantiated)
	}

	return instantiated, nil
}

func (p *Pipeline) format() yamlmeta.Format {
	if len(p.opts.Format) == 0 {
		return yamlmeta.FormatYAML
	}
	return p.opts.Format
}
