// Package version resolves build metadata for the scribe binary.
package version

import "runtime/debug"

// Set at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/kbukum/scribe/version.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info is the resolved build metadata for the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

// Get resolves build metadata. Values stamped with -ldflags win; missing
// ones are filled from the binary's embedded VCS settings when present.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" && len(setting.Value) >= 7 {
				info.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = setting.Value
			}
		}
	}
	return info
}

// Short returns the version string shown by scribe --version.
func Short() string {
	info := Get()
	if info.Commit != "" {
		return info.Version + "-" + info.Commit
	}
	return info.Version
}
