// Package version reports the build's git revision for logging and the
// health endpoint. An -ldflags override wins, then the VCS stamp embedded
// by the Go toolchain, then "dev" for test binaries and non-git builds.
package version

import "runtime/debug"

// AppName prefixes version strings, e.g. "maestro/a3f8c2d1".
const AppName = "maestro"

// commitOverride can be injected at build time for container images built
// without a .git directory:
//
//	go build -ldflags "-X .../pkg/version.commitOverride=$GIT_SHA"
var commitOverride string

// GitCommit is the short (8 char) revision this binary was built from.
var GitCommit = resolveCommit()

// Full returns "<app>/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
