// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"testing"

	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/stretchr/testify/require"
)

func TestTTYVerbosity(t *testing.T) {
	t.Run("quiet", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		tty := ui.NewCustomWriterTTY(false, stdout, stderr)

		tty.Printf("out %d\n", 1)
		tty.Debugf("debug %d\n", 2)
		tty.Warnf("warn %d\n", 3)
		tty.DebugWriter().Write([]byte("hidden\n"))

		require.Equal(t, "out 1\n", stdout.String())
		require.Equal(t, "warn 3\n", stderr.String())
	})

	t.Run("verbose", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		tty := ui.NewCustomWriterTTY(true, stdout, stderr)

		tty.Debugf("debug %d\n", 2)
		tty.DebugWriter().Write([]byte("shown\n"))

		require.Equal(t, "", stdout.String())
		require.Equal(t, "debug 2\nshown\n", stderr.String())
	})
}
