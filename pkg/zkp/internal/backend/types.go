package backend

import (
	"errors"
	"unsafe"
)

// Context is an opaque pointer to a native secp256k1_context.
type Context = unsafe.Pointer

// Scratch is an opaque pointer to a native secp256k1_scratch_space.
type Scratch = unsafe.Pointer

// Native context flags. Values match SECP256K1_CONTEXT_* in secp256k1.h.
const (
	FlagsTypeContext uint = 1 << 0
	FlagsBitVerify   uint = 1 << 8
	FlagsBitSign     uint = 1 << 9
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (cgo disabled or Windows build).
	ErrNotBuilt = errors.New("zkp/internal/backend: native bindings not built")

	// ErrAlloc is returned when the native library hands back NULL from an
	// allocating constructor.
	ErrAlloc = errors.New("zkp/internal/backend: native allocation failed")

	// ErrRandomize is returned when secp256k1_context_randomize rejects the seed.
	ErrRandomize = errors.New("zkp/internal/backend: context randomization failed")
)
