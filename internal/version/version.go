// Package version resolves the version string reported for --version.
package version

import (
	"runtime/debug"
)

// Detect returns the explicit version when one was configured, otherwise
// the module version recorded in the embedding binary's build info, and
// "dev" as the last resort for local builds.
func Detect(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}
