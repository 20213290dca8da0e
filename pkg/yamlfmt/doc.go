// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlfmt prints a document tree as YAML with every entry annotated
with the position it was read from, e.g.

	paths: # api/root.yml:3
	  /users: # api/paths/users.yml:1
	    get: # api/paths/users.yml:2

It is meant for debugging where a merged or instantiated value came from;
the output is not guaranteed to be parseable.
*/
package yamlfmt
