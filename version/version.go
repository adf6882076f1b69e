// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package version contains the version information of this build.
package version

var (
	// Version is the version of this build. It is set via ldflags.
	Version = "unreleased"

	// Revision is the source control revision of this build. It is set
	// via ldflags.
	Revision = "unknown"
)
