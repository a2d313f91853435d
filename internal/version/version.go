// internal/version/version.go
package version

// Version is stamped here rather than via ldflags so `go install` builds
// report something useful.
const Version = "0.3.0"
