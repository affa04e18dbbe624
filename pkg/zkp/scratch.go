package zkp

import (
	"context"
	"runtime"
	"sync"
	"unsafe"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/logging"
)

// Handle lends the native pointers of a scratch space to a single Use
// callback. Both pointers are invalid once the callback returns.
type Handle struct {
	ctx     unsafe.Pointer
	scratch unsafe.Pointer
}

// Context returns the secp256k1_context the scratch space was created with.
func (h Handle) Context() unsafe.Pointer { return h.ctx }

// Scratch returns the secp256k1_scratch_space pointer.
func (h Handle) Scratch() unsafe.Pointer { return h.scratch }

// ScratchSpace owns a single native scratch arena.
//
// Concurrency Safety:
//   - A *ScratchSpace can be shared between goroutines; Use, Close, Closed and
//     MaxSize are safe to call concurrently.
//   - Use holds the resource for the whole callback. Concurrent callers wait,
//     because the native arena is mutated in place.
//   - The callback passed to Use must not call Use or Close on the same
//     scratch space; it would deadlock.
type ScratchSpace struct {
	mu      sync.Mutex
	nat     nativeLayer
	ref     ContextRef
	owner   *CurveContext
	ctx     unsafe.Pointer
	scratch unsafe.Pointer
	maxSize int
	log     logging.Logger
}

// NewScratchSpace allocates a native scratch arena of maxSize bytes bound to
// ctx. A maxSize of zero is valid and yields a zero-capacity arena.
//
// Callers should defer Close immediately after a successful call.
func NewScratchSpace(ctx ContextRef, maxSize int) (*ScratchSpace, error) {
	return NewScratchSpaceWithConfig(ctx, maxSize, Config{})
}

// NewScratchSpaceWithConfig is NewScratchSpace with explicit configuration.
func NewScratchSpaceWithConfig(ctx ContextRef, maxSize int, cfg Config) (*ScratchSpace, error) {
	if maxSize < 0 {
		return nil, ErrInvalidSize
	}
	if ctx == nil {
		return nil, ErrNilContext
	}

	owner, _ := ctx.(*CurveContext)
	if owner != nil {
		if err := owner.retain(); err != nil {
			return nil, err
		}
	}
	abort := func(err error) (*ScratchSpace, error) {
		if owner != nil {
			owner.release()
		}
		return nil, err
	}

	ctxPtr := ctx.NativeContext()
	if ctxPtr == nil {
		return abort(ErrNilContext)
	}

	nat := native
	scratch, err := nat.scratchCreate(ctxPtr, maxSize)
	if err != nil {
		return abort(remapError(err))
	}
	if scratch == nil {
		return abort(ErrScratchAlloc)
	}

	s := &ScratchSpace{
		nat:     nat,
		ref:     ctx,
		owner:   owner,
		ctx:     ctxPtr,
		scratch: scratch,
		maxSize: maxSize,
		log:     cfg.logger().With("component", "zkp.scratch"),
	}
	runtime.SetFinalizer(s, (*ScratchSpace).finalize)
	s.log.Debug(context.Background(), "scratch space created", "max_size", maxSize)
	return s, nil
}

// MaxSize returns the capacity fixed at creation.
func (s *ScratchSpace) MaxSize() int {
	return s.maxSize
}

// Closed reports whether the native arena has been released.
func (s *ScratchSpace) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scratch == nil
}

// Use lends the native handle to fn and returns fn's error. It returns
// ErrScratchClosed without calling fn once the scratch space is released.
func (s *ScratchSpace) Use(fn func(Handle) error) error {
	if s == nil {
		return ErrScratchClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scratch == nil {
		return ErrScratchClosed
	}
	if fn == nil {
		return nil
	}
	err := fn(Handle{ctx: s.ctx, scratch: s.scratch})
	runtime.KeepAlive(s)
	return err
}

// Close destroys the native arena. Only the first call reaches the native
// library; later calls return ErrScratchClosed.
func (s *ScratchSpace) Close() error {
	if s == nil {
		return ErrScratchClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scratch == nil {
		return ErrScratchClosed
	}
	s.releaseLocked()
	runtime.SetFinalizer(s, nil)
	s.log.Debug(context.Background(), "scratch space released", "max_size", s.maxSize)
	return nil
}

func (s *ScratchSpace) releaseLocked() {
	s.nat.scratchDestroy(s.ctx, s.scratch)
	s.scratch = nil
	s.ctx = nil
	if s.owner != nil {
		s.owner.release()
		s.owner = nil
	}
	s.ref = nil
}

func (s *ScratchSpace) finalize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scratch == nil {
		return
	}
	s.log.Warn(context.Background(), "scratch space reclaimed by finalizer; Close was not called", "max_size", s.maxSize)
	s.releaseLocked()
}
