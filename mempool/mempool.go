package mempool

import (
	"fmt"

	"github.com/npillmayer/pools"
	"github.com/npillmayer/pools/ref"
)

// Pool is a memory pool for values of type T, handing out reference-counted
// handles. An advisory capacity bounds how many storage cells the pool
// preallocates and retains for reuse; it never bounds the number of live
// allocations.
type Pool[T any] struct {
	capacity int             // advisory, bounds preallocation and retention
	free     []*ref.Slot[T]  // cells ready for reuse
	clone    pools.Cloner[T] // copy primitive for copy-on-write
	zero     ref.Ref[T]      // canonical default-value cell, created on demand
}

var _ pools.ClonePool[int, ref.Ref[int]] = (*Pool[int])(nil)
var _ pools.DefaultPool[int, ref.Ref[int]] = (*Pool[int])(nil)

// New creates a pool with the given advisory capacity. It cannot fail for any
// size ≥ 0.
//
// Use it like this:
//
//	pool := mempool.New[node](256, mempool.WithCloner(cloneNode))
//
func New[T any](size int, opts ...Option[T]) *Pool[T] {
	assertThat(size >= 0, "advisory pool capacity must not be negative: %d", size)
	p := &Pool[T]{
		capacity: size,
		clone:    pools.ShallowClone[T],
	}
	for _, option := range opts {
		option(p)
	}
	return p
}

// Option is a type to help initializing pools at creation time.
type Option[T any] func(*Pool[T])

// WithCloner sets the copy primitive MakeMut uses for shared values. Without
// it, values are copied by plain assignment, which is only correct for node
// types without reference-typed fields.
func WithCloner[T any](clone pools.Cloner[T]) Option[T] {
	return func(p *Pool[T]) {
		p.clone = clone
	}
}

// Fill preallocates storage cells up to the pool's advisory capacity.
func (p *Pool[T]) Fill() {
	missing := p.capacity - len(p.free)
	if missing <= 0 {
		return
	}
	tracer().Debugf("pool fill: preallocating chunk of %d cells", missing)
	chunk := ref.NewChunk(missing, p.recycle)
	for i := range chunk {
		p.free = append(p.free, &chunk[i])
	}
}

// PoolSize returns the number of storage cells currently ready for reuse.
func (p *Pool[T]) PoolSize() int {
	return len(p.free)
}

// NewRef takes ownership of value and returns a fresh handle, drawing a
// storage cell from the pool if one is ready.
func (p *Pool[T]) NewRef(value T) ref.Ref[T] {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return ref.Revive(s, value)
	}
	return ref.NewWithRecycler(value, p.recycle)
}

// PtrEq reports whether two handles stem from the same allocation.
func (p *Pool[T]) PtrEq(a, b ref.Ref[T]) bool {
	return a.Eq(b)
}

// MakeMut returns an exclusive mutable view of the value behind r. A unique
// owner gets a direct view with no allocation; a sharing owner gets r
// re-bound to a pool-allocated clone, leaving every other owner of the
// original value untouched.
func (p *Pool[T]) MakeMut(r *ref.Ref[T]) *T {
	assertThat(!r.IsNil(), "attempt to mutate through nil handle")
	if r.IsUnique() {
		return r.Get()
	}
	tracer().Debugf("make_mut: handle is shared, cloning pointee")
	cow := p.NewRef(p.clone(*r.Get()))
	r.Release()
	*r = cow
	return cow.Get()
}

// DefaultRef returns a handle for T's zero value. The pool shares a single
// canonical zero cell between all DefaultRef calls; the pool itself stays a
// co-owner, so mutating through such a handle always copies first.
func (p *Pool[T]) DefaultRef() ref.Ref[T] {
	if p.zero.IsNil() {
		var none T
		p.zero = p.NewRef(none)
	}
	return p.zero.Clone()
}

// recycle takes a spent storage cell back, up to the advisory capacity.
// Cells beyond that are left to the garbage collector.
func (p *Pool[T]) recycle(s *ref.Slot[T]) {
	if len(p.free) < p.capacity {
		p.free = append(p.free, s)
	}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("mempool: "+msg, msgargs...)
		panic(msg)
	}
}
