// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package preprocess runs the whole transformation for one root file:
load, resolve includes, extract and instantiate generics, serialize.

Every stage either hands its complete output to the next one or aborts
the run; nothing is written unless all of them succeed.
*/
package preprocess
