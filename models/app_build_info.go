// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the version metadata linked into a binary with -ldflags.
// Values that were not provided read as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notAvailable
	}
	return v
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// HasVersion reports whether a version was linked in.
func (a AppBuildInfo) HasVersion() bool {
	return a.BuildVersion() != notAvailable
}

// String is the one-line form printed at startup and by --version.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}
