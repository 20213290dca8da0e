// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package watch re-runs a function whenever one of the files it read changes.
package watch
