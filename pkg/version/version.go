// Package version holds build information injected with -ldflags, e.g.
//
//	-X github.com/charlie0129/batline/pkg/version.Version=v0.1.0
package version

var (
	// Version is the release tag of the binary.
	Version = "v0.0.0-dev"
	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"
)
