// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at build time:
// -ldflags "-X github.com/aidmat/yamlpp/pkg/version.Version=$VERSION"
var Version = "develop"
