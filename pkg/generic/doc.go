// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generic collects template definitions (map keys ending in <GENERIC>)
and expands $generic invocations of those templates.

	Page<GENERIC>:
	  type: object
	  properties:
	    items: T

	UserPage:
	  $generic:
	    target: Page
	    T: {$ref: '#/User'}

Only string values of map entries are placeholders. Keys and array elements
are copied unchanged.
*/
package generic
