package main

import (
	"runtime/debug"
)

const shortRevisionLength = 7

var readBuildInfo = debug.ReadBuildInfo

// initVersion fills in version from the module build info when the binary
// was not built by GoReleaser. Development builds get the VCS revision.
func initVersion() {
	if version != defaultVersion {
		return
	}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return
	}
	version = versionFromBuildInfo(info)
}

func versionFromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	revision := commit
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && revision == "" {
			revision = setting.Value
		}
	}
	if revision == "" {
		return defaultVersion
	}
	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}
	return defaultVersion + "+" + revision
}
