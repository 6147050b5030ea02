package pools

// Cloner produces a copy of a value which is deep enough for copy-on-write:
// mutating the copy must not be observable through the original. For node
// types holding slices or maps this means copying those, too.
type Cloner[T any] func(T) T

// ShallowClone copies a value by plain assignment. It is a valid Cloner for
// node types without reference-typed fields.
func ShallowClone[T any](value T) T {
	return value
}

// Pool is the base allocation capability every backend provides. A pool is
// bound to a single value type and hands out handles of a backend-specific
// type R.
//
// Pools are mutable infrastructure, not values: the immutability guarantee of
// a persistent data structure belongs to the structure, never to its pool.
// A pool does not lock; callers mutating through a pool must hold exclusive
// access to the handle slot being mutated.
type Pool[T, R any] interface {
	// Fill tops up the pool's preallocated storage to its advisory capacity.
	// Backends without preallocation treat this as a no-op.
	Fill()

	// PoolSize returns the number of storage cells currently held ready for
	// reuse.
	PoolSize() int

	// NewRef takes ownership of value and returns a fresh handle for it. The
	// handle never aliases a previously returned one.
	NewRef(value T) R

	// PtrEq reports whether two handles stem from the same allocation, i.e.
	// the same NewRef or DefaultRef call or clones thereof. Coincidental
	// value equality never makes handles identical.
	PtrEq(a, b R) bool
}

// ClonePool is the copy-on-write capability. It extends the base capability
// for value types the backend knows how to clone.
type ClonePool[T, R any] interface {
	Pool[T, R]

	// MakeMut returns an exclusive mutable view of the value behind ref. If
	// ref is the unique owner of its value, the view is direct and nothing is
	// allocated. Otherwise the value is cloned, ref is re-bound to the clone,
	// and the view points into the clone; other owners of the original value
	// are left untouched. After MakeMut returns, ref is uniquely owned until
	// the next clone of it is taken.
	MakeMut(ref *R) *T
}

// DefaultPool is the default-value capability for value types with a
// meaningful zero value.
type DefaultPool[T, R any] interface {
	Pool[T, R]

	// DefaultRef returns a handle for the value type's zero value. Backends
	// may hand out a shared canonical instance to avoid re-allocating common
	// empty nodes; handles obtained this way behave exactly like handles from
	// NewRef with respect to identity and copy-on-write.
	DefaultRef() R
}
