// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Updating an existing key keeps it at the position where it was first inserted.
This is exactly the accumulation rule used when several included documents are
merged, and it keeps the output of yamlpp deterministic and stable.
*/
package orderedmap
