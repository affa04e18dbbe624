// Package zkp owns the native resources the secp256k1-zkp library needs and
// hands them to callers without leaking handles across the cgo boundary.
//
// # Scratch spaces
//
// Batch operations in secp256k1-zkp (range proof and bulletproof verification,
// proof generation) take a scratch space: a native arena that replaces the
// library's own heap allocation. A ScratchSpace owns exactly one such arena.
//
//	ctx, err := zkp.NewCurveContext(zkp.ContextNone)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	scratch, err := zkp.NewScratchSpace(ctx, 1<<20)
//	if err != nil {
//	    return err
//	}
//	defer scratch.Close()
//
//	err = scratch.Use(func(h zkp.Handle) error {
//	    // pass h.Context() and h.Scratch() to the native call
//	    return nil
//	})
//
// The arena is destroyed exactly once: by Close, or by a finalizer if the
// caller drops the last reference without closing it. A second Close returns
// ErrScratchClosed and never reaches the native library.
//
// # Concurrency
//
// A *ScratchSpace may be shared between goroutines. The native arena is
// mutated in place by every operation that uses it, so Use serializes callers
// on a per-resource mutex; two goroutines never drive the same arena at once.
// Callers that need parallel batch work create one scratch space per goroutine.
//
// # Handles
//
// The raw pointers in a Handle are valid only inside the Use callback that
// received them. Do not store them.
package zkp
