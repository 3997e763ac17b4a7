// Copyright IBM Corp. 2018, 2025
// SPDX-License-Identifier: MPL-2.0

// Package version reports the release of this module.
package version

import (
	"github.com/apparentlymart/go-versions/versions"
)

var (
	Version           = "0.1.0"
	VersionPrerelease = "dev"
	VersionMetadata   = ""
)

// String returns the full version in canonical form, such as "0.1.0-dev".
func String() string {
	return SemVer().String()
}

// SemVer returns the parsed version. It panics if the variables above were
// set at link time to something that is not a semantic version.
func SemVer() versions.Version {
	v := Version
	if VersionPrerelease != "" {
		v += "-" + VersionPrerelease
	}
	if VersionMetadata != "" {
		v += "+" + VersionMetadata
	}
	return versions.MustParseVersion(v)
}
