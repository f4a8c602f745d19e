package version

import (
	"strings"
	"testing"
)

func TestVersionFormat(t *testing.T) {
	if got := Version(); got != "1.0.0" {
		t.Errorf("Version() = %q, want 1.0.0", got)
	}
	if got := GetVersion(); got != "v1.0.0" {
		t.Errorf("GetVersion() = %q, want v1.0.0", got)
	}
}

func TestGetFullVersionString(t *testing.T) {
	full := GetFullVersionString()
	if !strings.Contains(full, AppName) {
		t.Errorf("full version string missing app name: %s", full)
	}
	if !strings.Contains(full, "v1.0.0") {
		t.Errorf("full version string missing version: %s", full)
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	if info.Version == "" {
		t.Error("BuildInfo.Version should not be empty")
	}
	if info.GoVersion == "" {
		t.Error("BuildInfo.GoVersion should not be empty")
	}
	if info.Platform == "" {
		t.Error("BuildInfo.Platform should not be empty")
	}
	if info.Major != Major || info.Minor != Minor || info.Patch != Patch {
		t.Errorf("BuildInfo components mismatch: %+v", info)
	}
}

func TestIsPreRelease(t *testing.T) {
	if IsPreRelease() {
		t.Error("stable build should not report pre-release")
	}
}
