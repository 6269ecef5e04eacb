// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Galeriafora is the canonical application identifier used for filesystem paths and CLI branding.
	Galeriafora = "galeriafora"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, injected at link time via -ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
