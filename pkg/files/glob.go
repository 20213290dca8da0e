// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/util"
)

const globMetaChars = "*?[{"

// HasGlobMeta reports whether pattern contains glob syntax.
func HasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, globMetaChars)
}

// GlobBase is a directory a pattern was expanded under. Recursive bases
// match files in any subdirectory.
type GlobBase struct {
	Dir       string
	Recursive bool
}

// Glob expands pattern into the sorted list of files it matches.
// A pattern without glob syntax is returned unchanged (whether or not the
// file exists) so that a missing literal path fails when it is loaded.
func (l *Loader) Glob(pattern string) ([]string, error) {
	if !HasGlobMeta(pattern) {
		l.bases[GlobBase{Dir: filepath.Dir(pattern)}] = struct{}{}
		return []string{pattern}, nil
	}

	slashPattern := filepath.ToSlash(pattern)

	if !doublestar.ValidatePattern(slashPattern) {
		return nil, &LoadError{Path: pattern, Err: fmt.Errorf("Invalid glob pattern")}
	}

	base, rest := doublestar.SplitPattern(slashPattern)
	base = filepath.FromSlash(base)

	l.bases[GlobBase{Dir: base, Recursive: strings.Contains(rest, "**")}] = struct{}{}

	info, err := l.fs.Stat(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &LoadError{Path: pattern, Err: err}
	}
	if !info.IsDir() {
		return nil, nil
	}

	var matches []string

	err = util.Walk(l.fs, base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("Listing '%s': %s", path, err)
		}
		if info.IsDir() {
			return nil
		}
		matched, err := doublestar.Match(slashPattern, filepath.ToSlash(path))
		if err != nil {
			return err
		}
		if matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, &LoadError{Path: pattern, Err: err}
	}

	sort.Slice(matches, func(i, j int) bool {
		return filepath.ToSlash(matches[i]) < filepath.ToSlash(matches[j])
	})

	return matches, nil
}

// GlobBases returns the directories patterns were expanded under so far,
// including ones that do not exist yet.
func (l *Loader) GlobBases() []GlobBase {
	var result []GlobBase
	for base := range l.bases {
		result = append(result, base)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Dir != result[j].Dir {
			return result[i].Dir < result[j].Dir
		}
		return !result[i].Recursive && result[j].Recursive
	})
	return result
}
