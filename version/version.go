// Package version holds the tool version string.
// It is stamped into the banner of every generated file, so bumping it
// changes generated output byte-for-byte.
package version

// Version is the current site2c release.
var Version = "0.3.1"
