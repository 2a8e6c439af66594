// Package version provides build version information.
//
// Values can be injected at build time, for example:
//
//	go build -ldflags "-X skeinsum/internal/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/skeinsum
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0"

	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"
)

// Line returns the --version output for program.
func Line(program string) string {
	return fmt.Sprintf("%s version %s", program, Version)
}

// Full adds the commit and Go toolchain details.
func Full(program string) string {
	return fmt.Sprintf("%s (%s)\n  Go: %s\n  Platform: %s/%s",
		Line(program), GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
