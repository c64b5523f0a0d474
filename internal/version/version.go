// Package version reports build metadata for the catalog binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/catalog/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/catalog/internal/version.Commit=abc1234"
//
// Missing values are filled from VCS build info, then from "dev" placeholders.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo(readBuildInfo())
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

var readBuildInfo = func() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
}

// fromBuildInfo fills Version and Commit from vcs.* settings.
func fromBuildInfo(info *debug.BuildInfo) {
	if info == nil {
		return
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if settings["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		Commit = rev
	}

	if Version == "" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		} else if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Short returns just the version.
func Short() string {
	return Version
}

// Full returns the version with commit and platform.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s/%s)", Version, Commit, runtime.GOOS, runtime.GOARCH)
}
