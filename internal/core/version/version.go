// Package version reports build metadata for the running binary
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Service is the name reported by meta endpoints and logs
const Service = "inspectgrade-web"

// Info returns the build information
// set via -ldflags "-X 'inspectgrade/internal/core/version.version=v0.1.0'
// -X 'inspectgrade/internal/core/version.commit=abcd' -X 'inspectgrade/internal/core/version.date=2026-10-01'"
// when commit is unset the vcs revision stamped by the go tool is used
func Info() BuildInfo {
	c, d := commit, date
	if c == "none" {
		if rev, at, ok := vcsStamp(); ok {
			c, d = rev, at
		}
	}
	return BuildInfo{
		Service:   Service,
		Version:   version,
		Commit:    c,
		Date:      d,
		GoVersion: runtime.Version(),
	}
}

func vcsStamp() (rev, at string, ok bool) {
	bi, ok := readBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	if rev == "" {
		return "", "", false
	}
	if at == "" {
		at = date
	}
	return rev, at, true
}

var readBuildInfo = debug.ReadBuildInfo

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
