// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aidmat/yamlpp/pkg/files"
	"github.com/aidmat/yamlpp/pkg/tests"
	"github.com/aidmat/yamlpp/pkg/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type watchedRun struct {
	runs   chan struct{}
	inputs watch.Inputs
	err    error
}

func (r *watchedRun) run() (watch.Inputs, error) {
	return r.inputs, r.err
}

// watched is signaled once the watcher has updated its watches after a run.
func (r *watchedRun) watched() {
	r.runs <- struct{}{}
}

func startWatch(t *testing.T, dir string, run *watchedRun, opts watch.Options) (context.CancelFunc, chan error) {
	testUI, _ := tests.NewUI()

	opts.Debounce = 50 * time.Millisecond
	opts.AfterRun = run.watched

	watcher, err := watch.New(opts, testUI, run.run)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- watcher.Watch(ctx, dir) }()

	expectRun(t, run)

	return cancel, done
}

func expectRun(t *testing.T, run *watchedRun) {
	t.Helper()
	select {
	case <-run.runs:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "Expected a run")
	}
}

func expectNoRun(t *testing.T, run *watchedRun) {
	t.Helper()
	select {
	case <-run.runs:
		require.FailNow(t, "Expected no run")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchRerunsOnInputChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "root.yml")
	require.NoError(t, os.WriteFile(input, []byte("a: 1\n"), 0644))

	run := &watchedRun{runs: make(chan struct{}, 10), inputs: watch.Inputs{Files: []string{input}}}

	cancel, done := startWatch(t, dir, run, watch.Options{})

	require.NoError(t, os.WriteFile(input, []byte("a: 2\n"), 0644))
	expectRun(t, run)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchRerunsOnNewDocumentFile(t *testing.T) {
	dir := t.TempDir()
	run := &watchedRun{runs: make(chan struct{}, 10)}

	cancel, done := startWatch(t, dir, run, watch.Options{})
	defer func() { cancel(); <-done }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.toml"), []byte("a = 1\n"), 0644))
	expectRun(t, run)
}

func TestWatchIgnoresOutputAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.yaml")
	run := &watchedRun{runs: make(chan struct{}, 10)}

	cancel, done := startWatch(t, dir, run, watch.Options{IgnorePaths: []string{output}})
	defer func() { cancel(); <-done }()

	require.NoError(t, os.WriteFile(output, []byte("a: 1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.yml"), []byte("a: 1\n"), 0644))

	expectNoRun(t, run)
}

func TestWatchKeepsGoingAfterFailedRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "root.yml")
	require.NoError(t, os.WriteFile(input, []byte("a: [\n"), 0644))

	run := &watchedRun{runs: make(chan struct{}, 10), inputs: watch.Inputs{Files: []string{input}}, err: errors.New("broken")}

	cancel, done := startWatch(t, dir, run, watch.Options{})
	defer func() { cancel(); <-done }()

	require.NoError(t, os.WriteFile(input, []byte("a: 1\n"), 0644))
	expectRun(t, run)
}

func TestWatchCoversRecursiveIncludeDirs(t *testing.T) {
	dir := t.TempDir()
	rootDir := filepath.Join(dir, "root")
	schemas := filepath.Join(dir, "schemas")
	require.NoError(t, os.MkdirAll(filepath.Join(schemas, "nested"), 0755))
	require.NoError(t, os.MkdirAll(rootDir, 0755))

	run := &watchedRun{
		runs:   make(chan struct{}, 10),
		inputs: watch.Inputs{GlobBases: []files.GlobBase{{Dir: schemas, Recursive: true}}},
	}

	cancel, done := startWatch(t, rootDir, run, watch.Options{})
	defer func() { cancel(); <-done }()

	require.NoError(t, os.WriteFile(filepath.Join(schemas, "nested", "user.yml"), []byte("a: 1\n"), 0644))
	expectRun(t, run)

	deeper := filepath.Join(schemas, "deeper")
	require.NoError(t, os.Mkdir(deeper, 0755))
	expectRun(t, run)

	require.NoError(t, os.WriteFile(filepath.Join(deeper, "order.yml"), []byte("a: 1\n"), 0644))
	expectRun(t, run)
}

func TestWatchCoversIncludeDirsCreatedLater(t *testing.T) {
	dir := t.TempDir()
	rootDir := filepath.Join(dir, "root")
	other := filepath.Join(dir, "other")
	require.NoError(t, os.MkdirAll(rootDir, 0755))
	require.NoError(t, os.MkdirAll(other, 0755))

	missing := filepath.Join(other, "parts")
	run := &watchedRun{
		runs:   make(chan struct{}, 10),
		inputs: watch.Inputs{GlobBases: []files.GlobBase{{Dir: missing}}},
	}

	cancel, done := startWatch(t, rootDir, run, watch.Options{})
	defer func() { cancel(); <-done }()

	require.NoError(t, os.Mkdir(missing, 0755))
	expectRun(t, run)

	require.NoError(t, os.WriteFile(filepath.Join(missing, "a.yml"), []byte("a: 1\n"), 0644))
	expectRun(t, run)
}
