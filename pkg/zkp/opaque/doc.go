// Package opaque defines the fixed-size serialized values that cross into
// secp256k1-zkp: tweaks, public keys, Schnorr signatures, Pedersen
// commitments and generators.
//
// The native library owns their internal layout. This package only makes sure
// a value has the right width and passes the cheap structural checks (prefix
// byte, on-curve point, scalar in range) before it is handed over, so
// malformed bytes are rejected in Go instead of inside the native call.
//
// Every type can be built from raw bytes or from hex text; hex goes through
// fixedhex.DecodeExact. Comparisons use crypto/subtle.
//
// Tweak is secret material: its String method is redacted and Zeroize clears
// it.
package opaque
