// Package build carries values stamped in at link time.
package build

// Version is the release identifier reported by the version command.
// Release builds overwrite it via -ldflags; otherwise it stays "dev".
var Version = "dev"
