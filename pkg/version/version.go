// Package version carries the build identity of the dealer checker.
package version

import (
	"fmt"
	"runtime"
)

const (
	Major = 1
	Minor = 0
	Patch = 0

	// PreRelease is appended after a hyphen when non-empty (e.g. "rc1").
	PreRelease = ""

	AppName = "DealerShield"
)

// BuildInfo bundles everything the /health endpoint and the CLI banner need.
type BuildInfo struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	Major     int    `json:"major"`
	Minor     int    `json:"minor"`
	Patch     int    `json:"patch"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Version returns the bare semantic version, e.g. "1.0.0".
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if PreRelease != "" {
		v += "-" + PreRelease
	}
	return v
}

// GetVersion returns the version prefixed with "v".
func GetVersion() string {
	return "v" + Version()
}

// GetFullVersionString returns the app name with its version.
func GetFullVersionString() string {
	return fmt.Sprintf("%s %s", AppName, GetVersion())
}

// GetBuildInfo returns the complete build description.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		AppName:   AppName,
		Version:   Version(),
		Major:     Major,
		Minor:     Minor,
		Patch:     Patch,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// IsPreRelease reports whether this build is a pre-release.
func IsPreRelease() bool {
	return PreRelease != ""
}
