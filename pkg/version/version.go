// Package version records the build identity of the taskdesk binary.
package version

// Version is the release identifier reported by the version subcommand.
// Overridden at build time through -ldflags by the mage Build target.
var Version = "0.1.0"
