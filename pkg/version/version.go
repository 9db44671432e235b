// Package version exposes the build version of the ghgfocus binary.
package version

// version is the current release version. It is overridden at build time via
// -ldflags "-X github.com/rshade/ghgfocus/pkg/version.version=vX.Y.Z".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var version = "0.1.0-dev"

// GetVersion returns the current ghgfocus version string.
func GetVersion() string {
	return version
}
