// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user output (typically, a tty
device). A UI value is handed to every processing stage as its diagnostics
sink; nothing in yamlpp writes to the console through global state.
*/
package ui
