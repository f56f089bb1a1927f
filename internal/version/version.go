// Package version holds the build version, overridable with
// -ldflags "-X hairpin/internal/version.Version=...".
package version

var Version = "dev"
