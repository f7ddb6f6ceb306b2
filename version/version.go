// Package version tells which build of gamesound is running.
package version

import (
	"runtime/debug"
	"strings"
)

// Version can be set at build time:
//
//	go build -ldflags "-X github.com/vsariola/gamesound/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a -dirty
// suffix for modified trees. Empty when the build has no VCS info.
var Hash = hashFromBuildInfo()

// VersionOrHash is Version if it was set, Hash otherwise.
var VersionOrHash = versionOrHash(Version, Hash)

func hashFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return hashFromSettings(info.Settings)
}

func hashFromSettings(settings []debug.BuildSetting) string {
	var revision string
	var modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return ""
	}
	revision = revision[:min(len(revision), 7)]
	if modified {
		return revision + "-dirty"
	}
	return revision
}

func versionOrHash(version, hash string) string {
	if v := strings.TrimSpace(version); v != "" {
		return v
	}
	return hash
}
