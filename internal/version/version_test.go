package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name: "Tagged module",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			},
			wantVersion: "v1.2.0",
			wantCommit:  "0123456",
		},
		{
			name: "Dirty devel build",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "vcs.time", Value: "2026-03-04T10:00:00Z"},
				},
			},
			wantVersion: "dev-20260304",
			wantCommit:  "abc-dirty",
		},
		{
			name: "No build info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savedVersion, savedCommit := Version, Commit
			defer func() { Version, Commit = savedVersion, savedCommit }()
			Version, Commit = "", ""

			fromBuildInfo(tt.info)

			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestFromBuildInfoKeepsLdflags(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	defer func() { Version, Commit = savedVersion, savedCommit }()
	Version, Commit = "v9.9.9", "feedbee"

	fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0000000000"}},
	})

	if Version != "v9.9.9" || Commit != "feedbee" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}

func TestFull(t *testing.T) {
	if !strings.Contains(Full(), Short()) || !strings.Contains(Full(), "commit: ") {
		t.Errorf("Full() = %q", Full())
	}
}
