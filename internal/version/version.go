// Package version carries the application version reported by the system
// endpoints.
package version

// Version is the application version, overridable at build time via
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "1.2.0"
