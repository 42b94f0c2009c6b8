// Package buildinfo exposes version metadata stamped at build time.
//
// Release builds inject the values with ldflags, for example:
//
//	go build -ldflags "-X github.com/jharmer/spmat/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/jharmer/spmat/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/jharmer/spmat/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report "dev".
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the short git SHA the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String renders the stamped metadata as a multi-line report.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra --version output template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
