// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildValueUnknown is what the build scripts leave in linker variables
// they did not set.
const BuildValueUnknown = "N/A"

// AppBuildInfo carries the version, date and commit injected with -ldflags.
// Empty values are stored as [BuildValueUnknown].
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the linker variables.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// VersionResponse returns the build as served by the version endpoint.
// Unknown values are left empty.
func (a AppBuildInfo) VersionResponse() VersionResponse {
	return VersionResponse{
		Version:     known(a.buildVersion),
		BuildDate:   known(a.buildDate),
		BuildCommit: known(a.buildCommit),
	}
}

// String renders the startup banner lines.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.buildVersion, a.buildDate, a.buildCommit)
}

func orUnknown(v string) string {
	if v == "" {
		return BuildValueUnknown
	}
	return v
}

func known(v string) string {
	if v == BuildValueUnknown {
		return ""
	}
	return v
}
