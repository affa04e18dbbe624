//go:build cgo && !windows

package backend

/*
#cgo CFLAGS: -I${SRCDIR}/../../../../secp256k1-zkp/include -I/usr/local/include
#cgo LDFLAGS: -L${SRCDIR}/../../../../secp256k1-zkp/.libs -L/usr/local/lib -lsecp256k1
#include <stdlib.h>
#include <secp256k1.h>
*/
import "C"

import (
	"unsafe"
)

// Built reports whether the native library is linked in.
func Built() bool { return true }

// ContextCreate allocates a new secp256k1_context with the given flags.
func ContextCreate(flags uint) (Context, error) {
	ctx := C.secp256k1_context_create(C.uint(flags))
	if ctx == nil {
		return nil, ErrAlloc
	}
	return Context(unsafe.Pointer(ctx)), nil
}

// ContextDestroy releases a context created by ContextCreate. A nil context is
// ignored.
func ContextDestroy(ctx Context) {
	if ctx == nil {
		return
	}
	C.secp256k1_context_destroy((*C.secp256k1_context)(ctx))
}

// ContextRandomize reseeds the context's blinding state. The seed must be 32
// bytes; it is read by the native call and not retained.
func ContextRandomize(ctx Context, seed *[32]byte) error {
	if ctx == nil || seed == nil {
		return ErrRandomize
	}
	ret := C.secp256k1_context_randomize((*C.secp256k1_context)(ctx), (*C.uchar)(unsafe.Pointer(&seed[0])))
	if ret != 1 {
		return ErrRandomize
	}
	return nil
}

// ScratchSpaceCreate allocates a native scratch arena able to hold maxSize
// bytes. The caller owns the result and must pass it to ScratchSpaceDestroy
// exactly once, with the same context.
func ScratchSpaceCreate(ctx Context, maxSize int) (Scratch, error) {
	if ctx == nil || maxSize < 0 {
		return nil, ErrAlloc
	}
	s := C.secp256k1_scratch_space_create((*C.secp256k1_context)(ctx), C.size_t(maxSize))
	if s == nil {
		return nil, ErrAlloc
	}
	return Scratch(unsafe.Pointer(s)), nil
}

// ScratchSpaceDestroy releases a scratch arena. Passing a handle twice is
// undefined behaviour in the native library; callers guard against it.
func ScratchSpaceDestroy(ctx Context, s Scratch) {
	if s == nil {
		return
	}
	C.secp256k1_scratch_space_destroy((*C.secp256k1_context)(ctx), (*C.secp256k1_scratch_space)(s))
}
