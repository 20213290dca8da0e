// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlmeta is the in-memory document model: a tree of Map and Array
nodes whose leaves are plain scalar values (nil, bool, int64, uint64, float64
and string).

Map keeps its items in insertion order; that order is significant both for
merging included documents and for the serialized output. Every item records
the file position it was parsed from so that failures can point at the
offending line.

Trees are treated as immutable by the rewriting stages: a rewrite builds new
nodes (or deep copies) rather than editing the input in place.
*/
package yamlmeta
