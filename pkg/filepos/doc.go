// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
and the line and column within that source.

Positions are attached to every parsed node so that a failing directive can be
reported to the user as "file:line" rather than only by its content.

Not all Positions point within a file (e.g. nodes produced by merging or by
converting plain Go values). The zero-value of Position (created using
NewUnknownPosition()) represents this case.
*/
package filepos
