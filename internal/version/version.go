package version

import (
	"fmt"
	"runtime/debug"
)

// Version contains the application version information.
// Set it at build time:
// go build -ldflags "-X git.home.luguber.info/inful/docnav/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Current returns Version, falling back to the module version recorded by
// the Go toolchain when no ldflags were given.
func Current() string {
	if Version != "unknown" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String renders the full build description used by --version.
func String() string {
	return fmt.Sprintf("docnav %s (commit %s, built %s)", Current(), GitCommit, BuildTime)
}
