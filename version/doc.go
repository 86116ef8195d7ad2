// Package version reports the build version of conduit binaries.
//
// Version, commit, branch and build time can be set at link time:
//
//	go build -ldflags "-X github.com/kbukum/conduit/version.Version=1.0.0"
//
// Anything left unset falls back to the VCS stamps in runtime/debug build info.
package version
