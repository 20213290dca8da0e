// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package include replaces $include directives with the merged content of the
files their glob pattern matches.

Included files are resolved recursively before they are merged, each one
relative to its own directory. Merging keeps the position of the first
occurrence of a key while the value of the last occurrence wins.
*/
package include
