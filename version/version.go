// Package version describes the running javagen build. Release builds set
// Version and Commit through ldflags; other builds fall back to the build
// info the Go toolchain embeds in the binary.
package version

import (
	"runtime"
	"runtime/debug"
)

// Set at build time via -ldflags "-X".
var (
	Version string
	Commit  string
)

// Info identifies a javagen build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Time      string `json:"time,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information of the running binary.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return fromBuild(bi)
}

func fromBuild(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, GoVersion: runtime.Version()}

	if bi != nil {
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				info.Time = s.Value
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	return info
}

// String renders the build as "javagen v1.2.0 (0123456+dirty)".
func (i Info) String() string {
	s := "javagen " + i.Version
	if i.Commit == "" {
		return s
	}
	s += " (" + i.Commit
	if i.Dirty {
		s += "+dirty"
	}
	return s + ")"
}

// Banner is written as a comment above generated files that opt into it.
func (i Info) Banner() string {
	return "Generated by javagen " + i.Version + ". Do not edit."
}
