package zkp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/internal/backend"
)

// ContextFlags selects the precomputation a native context carries.
type ContextFlags uint

// Flag values match SECP256K1_CONTEXT_NONE, _VERIFY and _SIGN.
const (
	ContextNone   = ContextFlags(backend.FlagsTypeContext)
	ContextVerify = ContextFlags(backend.FlagsTypeContext | backend.FlagsBitVerify)
	ContextSign   = ContextFlags(backend.FlagsTypeContext | backend.FlagsBitSign)
)

// ContextRef is any capability that can lend a live native secp256k1_context.
// The pointer must stay valid for as long as the ContextRef is reachable.
type ContextRef interface {
	NativeContext() unsafe.Pointer
}

// CurveContext owns one native secp256k1_context.
//
// It tracks the scratch spaces created from it and refuses to close while any
// of them is still open, so a context always outlives its scratch spaces.
type CurveContext struct {
	mu     sync.Mutex
	nat    nativeLayer
	ptr    unsafe.Pointer
	open   int
	closed bool
}

// NewCurveContext creates a native context and randomizes it with a fresh
// seed from crypto/rand.
func NewCurveContext(flags ContextFlags) (*CurveContext, error) {
	nat := native
	ptr, err := nat.contextCreate(uint(flags))
	if errors.Is(err, backend.ErrAlloc) || (err == nil && ptr == nil) {
		return nil, ErrContextAlloc
	}
	if err != nil {
		return nil, remapError(err)
	}

	var seed [32]byte
	defer ZeroizeBytes(seed[:])
	if _, err := rand.Read(seed[:]); err != nil {
		nat.contextDestroy(ptr)
		return nil, fmt.Errorf("zkp: read context seed: %w", err)
	}
	if err := nat.contextRandomize(ptr, &seed); err != nil {
		nat.contextDestroy(ptr)
		return nil, remapError(err)
	}

	c := &CurveContext{nat: nat, ptr: ptr}
	runtime.SetFinalizer(c, (*CurveContext).finalize)
	return c, nil
}

// NativeContext returns the native context pointer, or nil once the context
// has been closed.
func (c *CurveContext) NativeContext() unsafe.Pointer {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ptr
}

// Randomize reseeds the context's side-channel blinding.
func (c *CurveContext) Randomize(seed [32]byte) error {
	defer ZeroizeBytes(seed[:])
	if c == nil {
		return ErrNilContext
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrContextClosed
	}
	return remapError(c.nat.contextRandomize(c.ptr, &seed))
}

// Close destroys the native context. It fails with ErrContextInUse while
// scratch spaces created from it are open and with ErrContextClosed when
// called twice. Closing a nil context reports ErrNilContext.
func (c *CurveContext) Close() error {
	if c == nil {
		return ErrNilContext
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrContextClosed
	}
	if c.open > 0 {
		return ErrContextInUse
	}
	c.nat.contextDestroy(c.ptr)
	c.ptr = nil
	c.closed = true
	runtime.SetFinalizer(c, nil)
	return nil
}

func (c *CurveContext) retain() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrContextClosed
	}
	c.open++
	return nil
}

func (c *CurveContext) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open > 0 {
		c.open--
	}
}

// finalize runs only once every scratch space referencing c is unreachable.
func (c *CurveContext) finalize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.nat.contextDestroy(c.ptr)
	c.ptr = nil
	c.closed = true
}
