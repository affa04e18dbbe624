// Package fixedhex converts hexadecimal text into caller-owned, fixed-width
// byte buffers before they are used to build opaque secp256k1-zkp values.
//
// The native library assumes well-formed fixed-width input and performs no
// validation of its own, so every byte that reaches it from text goes through
// Decode first. Decode never allocates, never logs, and never touches memory
// outside the target slice. On any failure it writes nothing.
package fixedhex
