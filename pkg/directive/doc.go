// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package directive recognizes the reserved markers of the document format:

	$include: <glob>          splice in the merged content of matching files
	Name<GENERIC>: <body>     define a template called Name
	$generic:                 instantiate a template
	  target: Name
	  <placeholder>: <value>

A map holding $include or $generic is a directive as a whole; its other keys
carry no meaning.
*/
package directive
