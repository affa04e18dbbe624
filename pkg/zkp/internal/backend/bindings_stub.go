//go:build !cgo || windows

package backend

// Stub implementations for non-CGO builds or Windows.
// These allow the package to compile but return ErrNotBuilt when called.

func Built() bool { return false }

func ContextCreate(uint) (Context, error) {
	return nil, ErrNotBuilt
}

func ContextDestroy(Context) {}

func ContextRandomize(Context, *[32]byte) error {
	return ErrNotBuilt
}

func ScratchSpaceCreate(Context, int) (Scratch, error) {
	return nil, ErrNotBuilt
}

func ScratchSpaceDestroy(Context, Scratch) {}
