// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package include

import (
	"errors"
	"path/filepath"

	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/directive"
	"github.com/aidmat/yamlpp/pkg/files"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
)

type Resolver struct {
	loader *files.Loader
	ui     ui.UI
}

func NewResolver(loader *files.Loader, ui ui.UI) *Resolver {
	return &Resolver{loader: loader, ui: ui}
}

// Resolve returns a copy of tree with every $include directive replaced.
// Relative patterns are joined under basePath.
func (r *Resolver) Resolve(tree interface{}, basePath string) (interface{}, error) {
	return r.resolve(tree, basePath, nil)
}

// ResolveFile resolves tree as the content of the file at path, so that a
// file including itself (directly or not) is reported as a cycle.
func (r *Resolver) ResolveFile(path string, tree interface{}) (interface{}, error) {
	return r.resolve(tree, filepath.Dir(path), []string{path})
}

func (r *Resolver) resolve(val interface{}, basePath string, chain []string) (interface{}, error) {
	switch typedVal := val.(type) {
	case *yamlmeta.Map:
		inc, isInclude, err := directive.AsInclude(typedVal)
		if err != nil {
			return nil, err
		}
		if isInclude {
			return r.include(inc, basePath, chain)
		}

		result := &yamlmeta.Map{Position: typedVal.Position}
		for _, item := range typedVal.Items {
			newVal, err := r.resolve(item.Value, basePath, chain)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &yamlmeta.MapItem{Key: item.Key, Value: newVal, Position: item.Position})
		}
		return result, nil

	case *yamlmeta.Array:
		result := &yamlmeta.Array{Position: typedVal.Position}
		for _, item := range typedVal.Items {
			newVal, err := r.resolve(item.Value, basePath, chain)
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

func (r *Resolver) include(inc *directive.Include, basePath string, chain []string) (interface{}, error) {
	pattern := inc.Pattern
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(basePath, pattern)
	}

	if len(inc.Ignored) > 0 {
		r.ui.Warnf("Warning: keys %v next to '%s' (%s) are ignored\n",
			inc.Ignored, directive.IncludeKey, inc.Position.AsCompactString())
	}

	r.ui.Debugf("Including '%s'\n", pattern)

	var docs []interface{}

	paths, err := r.loader.LoadAll(pattern, func(path string, doc interface{}) error {
		resolved, err := r.resolveFile(path, doc, chain)
		if err != nil {
			return r.wrapErr(inc, path, err)
		}
		docs = append(docs, resolved)
		return nil
	})
	if err != nil {
		path := pattern
		var loadErr *files.LoadError
		if errors.As(err, &loadErr) {
			path = loadErr.Path
		}
		return nil, r.wrapErr(inc, path, err)
	}

	if len(paths) == 0 {
		r.ui.Warnf("Warning: include '%s' (%s) did not match any files\n", inc.Pattern, inc.Position.AsCompactString())
	}

	return Merge(docs, inc.Position), nil
}

func (r *Resolver) resolveFile(path string, doc interface{}, chain []string) (interface{}, error) {
	for _, seen := range chain {
		if seen == path {
			return nil, &CycleError{Chain: append(append([]string{}, chain...), path)}
		}
	}

	nextChain := append(append([]string{}, chain...), path)

	return r.resolve(doc, filepath.Dir(path), nextChain)
}

// wrapErr attaches the directive to load failures and cycles. Errors raised
// by nested directives already carry their own context.
func (r *Resolver) wrapErr(inc *directive.Include, path string, err error) error {
	var resErr *ResolutionError
	var malformedErr *directive.MalformedDirectiveError
	if errors.As(err, &resErr) || errors.As(err, &malformedErr) {
		return err
	}
	return &ResolutionError{Pattern: inc.Pattern, Path: path, Position: inc.Position, Err: err}
}
