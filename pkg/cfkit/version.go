package cfkit

import "github.com/hsiuhsiu/cfkit-go/internal/bindings"

// Version is set at build time via ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// Backend names the foreign runtime the binary was built against: "darwin"
// for the system frameworks, "emulated" for the in-process object heap used
// on other platforms and without cgo.
func Backend() string {
	return bindings.Backend
}
