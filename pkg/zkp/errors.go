package zkp

import (
	"errors"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/internal/backend"
)

var (
	// ErrNotBuilt reports that the binary was built without the native
	// secp256k1-zkp bindings (cgo disabled or Windows).
	ErrNotBuilt = backend.ErrNotBuilt

	// ErrScratchAlloc reports that the native library could not allocate a
	// scratch arena. The resource was not constructed; treat it as fatal for
	// the operation that needed it.
	ErrScratchAlloc = errors.New("zkp: scratch space allocation failed")

	// ErrContextAlloc reports that the native library could not allocate a
	// curve context.
	ErrContextAlloc = errors.New("zkp: curve context allocation failed")

	// ErrScratchClosed is returned when a scratch space is used or closed after
	// it has already been released.
	ErrScratchClosed = errors.New("zkp: scratch space already released")

	// ErrInvalidSize is returned for a negative scratch-space capacity.
	ErrInvalidSize = errors.New("zkp: scratch space size must not be negative")

	// ErrNilContext is returned when a scratch space is requested against a
	// missing or already destroyed curve context.
	ErrNilContext = errors.New("zkp: nil curve context")

	// ErrContextClosed is returned when a closed CurveContext is used.
	ErrContextClosed = errors.New("zkp: curve context already closed")

	// ErrContextInUse is returned by CurveContext.Close while scratch spaces
	// created from the context are still open.
	ErrContextInUse = errors.New("zkp: curve context still has open scratch spaces")

	// ErrRandomize reports that the native library rejected a randomization seed.
	ErrRandomize = errors.New("zkp: context randomization failed")
)

// remapError converts backend errors to public API errors.
func remapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, backend.ErrAlloc):
		return ErrScratchAlloc
	case errors.Is(err, backend.ErrRandomize):
		return ErrRandomize
	default:
		return err
	}
}
