// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package watch

import (
	"sort"
	"sync"
	"time"
)

// Debouncer collects paths and hands them to onFlush once no new path
// arrived for the length of the window.
type Debouncer struct {
	window  time.Duration
	paths   map[string]struct{}
	mu      sync.Mutex
	timer   *time.Timer
	onFlush func([]string)
	stopped bool
}

func NewDebouncer(window time.Duration, onFlush func([]string)) *Debouncer {
	return &Debouncer{
		window:  window,
		paths:   map[string]struct{}{},
		onFlush: onFlush,
	}
}

func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.paths[path] = struct{}{}

	d.timer = time.AfterFunc(d.window, d.flush)
}

func (d *Debouncer) flush() {
	d.mu.Lock()

	if d.stopped || len(d.paths) == 0 {
		d.mu.Unlock()
		return
	}

	var paths []string
	for path := range d.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	d.paths = map[string]struct{}{}
	d.timer = nil

	d.mu.Unlock()

	d.onFlush(paths)
}

// Stop drops pending paths.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.paths = map[string]struct{}{}
}
