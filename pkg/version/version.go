// Package version holds build-time version information, injected via
// -ldflags at release time.
package version

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"
)
