// Package version exposes build version information for the toolkit,
// embedded at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/restkit/restkit/version.Version=1.0.0"
package version

import (
	"runtime/debug"
)

// Version is the toolkit version, set at build time. Defaults to "dev".
var Version = "dev"

// Info holds the resolved build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Dirty     bool   `json:"dirty"`
}

// Get resolves build metadata, preferring -ldflags values and falling back
// to the VCS stamp embedded by the Go toolchain.
func Get() Info {
	info := Info{Version: Version}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = buildInfo.GoVersion
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit := setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
			info.GitCommit = commit
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		}
	}
	return info
}

// UserAgent is the value sent in the User-Agent header of outgoing requests.
func UserAgent() string {
	return "restkit/" + Version
}
