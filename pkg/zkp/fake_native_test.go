package zkp

import (
	"sync"
	"testing"
	"unsafe"
)

// fakeNative stands in for the native library and counts create/destroy
// pairing. Pointers it hands out refer to Go memory it keeps alive.
type fakeNative struct {
	mu sync.Mutex

	liveContexts  map[unsafe.Pointer]bool
	liveScratches map[unsafe.Pointer]int

	contextsCreated   int
	contextsDestroyed int
	randomized        int
	scratchCreated    int
	scratchDestroyed  int
	doubleFrees       int
	wrongContext      int

	failScratch   bool
	failRandomize bool
}

func withFakeNative(t *testing.T) *fakeNative {
	t.Helper()
	f := &fakeNative{
		liveContexts:  make(map[unsafe.Pointer]bool),
		liveScratches: make(map[unsafe.Pointer]int),
	}
	prev := native
	native = f
	t.Cleanup(func() { native = prev })
	return f
}

func (f *fakeNative) contextCreate(uint) (unsafe.Pointer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := unsafe.Pointer(new([16]byte))
	f.liveContexts[p] = true
	f.contextsCreated++
	return p, nil
}

func (f *fakeNative) contextDestroy(ctx unsafe.Pointer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.liveContexts[ctx] {
		f.doubleFrees++
		return
	}
	delete(f.liveContexts, ctx)
	f.contextsDestroyed++
}

func (f *fakeNative) contextRandomize(ctx unsafe.Pointer, _ *[32]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRandomize {
		return errFakeRandomize
	}
	f.randomized++
	return nil
}

func (f *fakeNative) scratchCreate(ctx unsafe.Pointer, maxSize int) (unsafe.Pointer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failScratch {
		return nil, nil
	}
	p := unsafe.Pointer(new([16]byte))
	f.liveScratches[p] = maxSize
	f.scratchCreated++
	return p, nil
}

func (f *fakeNative) scratchDestroy(ctx, scratch unsafe.Pointer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.liveScratches[scratch]; !ok {
		f.doubleFrees++
		return
	}
	if ctx == nil {
		f.wrongContext++
	}
	delete(f.liveScratches, scratch)
	f.scratchDestroyed++
}

func (f *fakeNative) newContextPtr() unsafe.Pointer {
	p, _ := f.contextCreate(0)
	return p
}

type fakeCounts struct {
	created, destroyed, live, doubleFrees int
}

func (f *fakeNative) scratchCounts() fakeCounts {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fakeCounts{
		created:     f.scratchCreated,
		destroyed:   f.scratchDestroyed,
		live:        len(f.liveScratches),
		doubleFrees: f.doubleFrees,
	}
}

func (f *fakeNative) isLiveScratch(p unsafe.Pointer) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.liveScratches[p]
	return ok
}

// staticContext is a ContextRef that is not a *CurveContext.
type staticContext struct {
	ptr unsafe.Pointer
}

func (c staticContext) NativeContext() unsafe.Pointer { return c.ptr }

type fakeError string

func (e fakeError) Error() string { return string(e) }

const errFakeRandomize = fakeError("fake: randomize rejected")
