// Package version provides build-time version information injected via ldflags.
package version

// Version is set at build time:
//
//	go build -ldflags "-X github.com/libtcod/hdrver/internal/version.Version=1.0.0" ./cmd/hdrver
var Version = "dev"

// GetVersion returns the hdrver build version.
func GetVersion() string {
	return Version
}
