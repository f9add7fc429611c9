// Package version holds build information stamped in at link time:
//
//	go build -ldflags "-X github.com/arthur-debert/cartbuild/internal/version.Version=v1.2.0"
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
