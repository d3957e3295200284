package version

import (
	"regexp"
	"strings"
	"testing"
)

func TestGetTrimsAndDefaults(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	Version = "  "
	GitCommit = " abc123 "
	BuildDate = "2024-01-15T10:30:00Z"
	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.GitCommit != "abc123" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("info = %+v", info)
	}
}

func TestColored(t *testing.T) {
	if got := Colored("1.2.3-rc.1", false); got != "1.2.3-rc.1" {
		t.Errorf("plain = %q", got)
	}
	if got := Colored("dev", true); got != "dev" {
		t.Errorf("non-semver = %q", got)
	}
	got := Colored("0.1.0-dev", true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Errorf("colored = %q", got)
	}
	// цвета не должны ломать сами цифры
	stripped := regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(got, "")
	if stripped != "0.1.0-dev" {
		t.Errorf("stripped = %q", stripped)
	}
}
