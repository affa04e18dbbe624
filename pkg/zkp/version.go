package zkp

import "github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/internal/backend"

var (
	Version     = "v0.0.0-in-progress"
	UpstreamSHA = "unknown"
	UpstreamDir = "secp256k1-zkp"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the pinned upstream commit of secp256k1-zkp. The
// native library exposes no version call, so this is set via ldflags.
func UpstreamVersion() string {
	return UpstreamSHA
}

// NativeAvailable reports whether the native bindings are linked into this
// binary.
func NativeAvailable() bool {
	return backend.Built()
}
