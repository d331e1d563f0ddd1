package internal

import (
	"fmt"
	"runtime"
)

// Set at build time using -ldflags, e.g.
// go build -ldflags "-X github.com/coffer-cli/coffer/internal.Version=v1.0.0"
var (
	Version = "v0.1.0"

	// Time the binary was built
	BuildTime = "unknown"

	GitCommit = "unknown"
)

// VersionInfo returns a formatted string with version information
func VersionInfo() string {
	return fmt.Sprintf(
		"%s %s\nBuild Date: %s\nGit Commit: %s\nGo Version: %s\nOS/Arch: %s/%s",
		DefaultAppName,
		Version,
		BuildTime,
		GitCommit,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
