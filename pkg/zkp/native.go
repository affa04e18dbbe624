package zkp

import (
	"unsafe"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/internal/backend"
)

// nativeLayer is the set of native entry points this package drives. Every
// create has exactly one matching destroy; nothing else touches the pointers.
type nativeLayer interface {
	contextCreate(flags uint) (unsafe.Pointer, error)
	contextDestroy(ctx unsafe.Pointer)
	contextRandomize(ctx unsafe.Pointer, seed *[32]byte) error
	scratchCreate(ctx unsafe.Pointer, maxSize int) (unsafe.Pointer, error)
	scratchDestroy(ctx, scratch unsafe.Pointer)
}

// native is swapped by tests for a counting double.
var native nativeLayer = cgoLayer{}

type cgoLayer struct{}

func (cgoLayer) contextCreate(flags uint) (unsafe.Pointer, error) {
	return backend.ContextCreate(flags)
}

func (cgoLayer) contextDestroy(ctx unsafe.Pointer) {
	backend.ContextDestroy(ctx)
}

func (cgoLayer) contextRandomize(ctx unsafe.Pointer, seed *[32]byte) error {
	return backend.ContextRandomize(ctx, seed)
}

func (cgoLayer) scratchCreate(ctx unsafe.Pointer, maxSize int) (unsafe.Pointer, error) {
	return backend.ScratchSpaceCreate(ctx, maxSize)
}

func (cgoLayer) scratchDestroy(ctx, scratch unsafe.Pointer) {
	backend.ScratchSpaceDestroy(ctx, scratch)
}
