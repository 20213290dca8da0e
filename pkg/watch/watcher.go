// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/files"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const DefaultDebounce = 200 * time.Millisecond

type Options struct {
	Debounce time.Duration
	// IgnorePaths are never treated as inputs (typically the output file).
	IgnorePaths []string
	// AfterRun is called after each run once watches are updated.
	AfterRun func()
	// FS is used to look up directories to watch; defaults to the local filesystem.
	FS billy.Filesystem
}

// Inputs are the files a run read and the directories its include
// patterns were expanded under.
type Inputs struct {
	Files     []string
	GlobBases []files.GlobBase
}

// RunFunc performs one run and returns its inputs, even when it fails.
type RunFunc func() (Inputs, error)

type Watcher struct {
	opts      Options
	ui        ui.UI
	runFunc   RunFunc
	fsWatcher *fsnotify.Watcher

	dirs      map[string]struct{}
	inputs    map[string]struct{}
	globBases []files.GlobBase
	ignore    map[string]struct{}
}

func New(opts Options, ui ui.UI, runFunc RunFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("Creating file watcher: %s", err)
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.FS == nil {
		opts.FS = osfs.New("/")
	}

	w := &Watcher{
		opts:      opts,
		ui:        ui,
		runFunc:   runFunc,
		fsWatcher: fsWatcher,
		dirs:      map[string]struct{}{},
		inputs:    map[string]struct{}{},
		ignore:    map[string]struct{}{},
	}

	for _, path := range opts.IgnorePaths {
		w.ignore[filepath.Clean(path)] = struct{}{}
	}

	return w, nil
}

// Watch runs once, then again after every relevant change under rootDir,
// the directories of files read by the previous run or the directories its
// include patterns were expanded under, until ctx is done.
// Failed runs are reported and do not stop watching.
func (w *Watcher) Watch(ctx context.Context, rootDir string) error {
	defer w.fsWatcher.Close()

	triggers := make(chan []string, 1)

	debouncer := NewDebouncer(w.opts.Debounce, func(paths []string) {
		select {
		case triggers <- paths:
		default: // a run is already pending
		}
	})
	defer debouncer.Stop()

	w.runOnce(rootDir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if w.isRelevant(event) {
				w.ui.Debugf("File event: %s\n", event)
				debouncer.Add(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.ui.Warnf("Warning: watching files: %s\n", err)

		case paths := <-triggers:
			w.ui.Warnf("Detected changes in %s, running again\n", strings.Join(paths, ", "))
			w.runOnce(rootDir)
		}
	}
}

func (w *Watcher) runOnce(rootDir string) {
	inputs, err := w.runFunc()
	if err != nil {
		w.ui.Warnf("Error: %s\n", uierrs.NewSemiStructuredError(err))
	}

	w.inputs = map[string]struct{}{}
	for _, path := range inputs.Files {
		w.inputs[filepath.Clean(path)] = struct{}{}
	}

	w.globBases = nil
	for _, base := range inputs.GlobBases {
		w.globBases = append(w.globBases, files.GlobBase{Dir: filepath.Clean(base.Dir), Recursive: base.Recursive})
	}

	w.updateDirs(rootDir, inputs.Files)

	w.ui.Debugf("Watching %d directories for changes\n", len(w.dirs))

	if w.opts.AfterRun != nil {
		w.opts.AfterRun()
	}
}

func (w *Watcher) updateDirs(rootDir string, inputs []string) {
	wanted := map[string]struct{}{filepath.Clean(rootDir): {}}
	for _, path := range inputs {
		wanted[filepath.Dir(filepath.Clean(path))] = struct{}{}
	}
	for _, base := range w.globBases {
		w.addGlobDirs(wanted, base)
	}

	for dir := range w.dirs {
		if _, found := wanted[dir]; !found {
			// directory may already be gone
			_ = w.fsWatcher.Remove(dir)
			delete(w.dirs, dir)
		}
	}

	for dir := range wanted {
		if _, found := w.dirs[dir]; found {
			continue
		}
		err := w.fsWatcher.Add(dir)
		if err != nil {
			w.ui.Warnf("Warning: cannot watch directory '%s': %s\n", dir, err)
			continue
		}
		w.dirs[dir] = struct{}{}
	}
}

// addGlobDirs adds the closest existing directory of base, and every
// directory under it when base is recursive.
func (w *Watcher) addGlobDirs(wanted map[string]struct{}, base files.GlobBase) {
	dir := base.Dir
	for {
		info, err := w.opts.FS.Stat(dir)
		if err == nil && info.IsDir() {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}

	wanted[dir] = struct{}{}

	if !base.Recursive || dir != base.Dir {
		return
	}

	err := util.Walk(w.opts.FS, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// removed while walking
			return nil
		}
		if info.IsDir() {
			wanted[path] = struct{}{}
		}
		return nil
	})
	if err != nil {
		w.ui.Warnf("Warning: cannot list directory '%s': %s\n", dir, err)
	}
}

// isRelevant accepts changes to files read by the last run, to any other
// document file (a new file may match an include pattern) and directories
// created where include patterns look for files.
func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	path := filepath.Clean(event.Name)

	if _, found := w.ignore[path]; found {
		return false
	}
	if _, found := w.inputs[path]; found {
		return true
	}
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	if event.Has(fsnotify.Create) && w.isGlobDir(path) {
		return true
	}
	return files.TypeOf(path) != files.TypeUnknown
}

func (w *Watcher) isGlobDir(path string) bool {
	for _, base := range w.globBases {
		if path == base.Dir || isWithin(base.Dir, path) {
			return true
		}
		if base.Recursive && isWithin(path, base.Dir) {
			return true
		}
	}
	return false
}

// isWithin reports whether path is strictly inside dir.
func isWithin(path, dir string) bool {
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
