package ref

import "fmt"

// Slot is the storage cell behind a Ref: a value together with its ownership
// count. Slots are opaque to handle holders; the type is exported so that
// pools can preallocate cells in chunks and take spent cells back for reuse.
type Slot[T any] struct {
	value   T
	rc      count
	recycle func(*Slot[T]) // invoked when the count drops to zero, may be nil
}

// NewChunk preallocates n contiguous storage cells, all wired to the given
// recycler. Handing out cells from such a chunk amortizes per-node allocation
// cost for high-churn structural editing.
func NewChunk[T any](n int, recycle func(*Slot[T])) []Slot[T] {
	chunk := make([]Slot[T], n)
	if recycle != nil {
		for i := range chunk {
			chunk[i].recycle = recycle
		}
	}
	return chunk
}

// Revive binds value to a dead (zero-count) storage cell and returns a fresh
// handle owning it.
func Revive[T any](s *Slot[T], value T) Ref[T] {
	assertThat(s.rc.load() == 0, "attempt to revive a live storage cell")
	s.value = value
	s.rc.incr()
	return Ref[T]{s: s}
}

// Ref is a shared-ownership handle to a value in a storage cell. The zero
// value is a nil handle, bound to nothing. Handles are small and copied
// freely, but a plain Go copy does not register a new owner: use Clone for
// that, and pair every Clone (and every handle-creating call) with a Release.
type Ref[T any] struct {
	s *Slot[T]
}

// New allocates a fresh storage cell for value and returns a handle owning
// it. The cell is garbage collected after the last owner releases.
func New[T any](value T) Ref[T] {
	return Revive(&Slot[T]{}, value)
}

// NewWithRecycler is New with a hook that receives the spent cell when the
// last owner releases. Pools use it to route cells back into a free list.
func NewWithRecycler[T any](value T, recycle func(*Slot[T])) Ref[T] {
	s := &Slot[T]{recycle: recycle}
	return Revive(s, value)
}

// IsNil reports whether r is bound to a storage cell at all.
func (r Ref[T]) IsNil() bool {
	return r.s == nil
}

// Clone registers a new owner of the cell and returns a handle for it.
// Cloning a nil handle yields a nil handle.
func (r Ref[T]) Clone() Ref[T] {
	if r.s == nil {
		return r
	}
	r.s.rc.incr()
	return r
}

// Release gives up ownership. When the last owner releases, the cell's value
// is dropped and the cell is handed to its recycler, if any. Releasing a nil
// handle is a no-op.
func (r Ref[T]) Release() {
	if r.s == nil {
		return
	}
	if r.s.rc.decr() == 0 {
		var none T
		r.s.value = none
		if r.s.recycle != nil {
			r.s.recycle(r.s)
		}
	}
}

// IsUnique reports whether r is the sole owner of its cell.
func (r Ref[T]) IsUnique() bool {
	return r.s != nil && r.s.rc.load() == 1
}

// Get returns a view of the cell's value. The view is to be treated as
// read-only unless the caller has established unique ownership, e.g. through
// a pool's MakeMut.
func (r Ref[T]) Get() *T {
	assertThat(r.s != nil, "attempt to read through nil handle")
	return &r.s.value
}

// Eq reports handle identity: true iff both handles own the same storage
// cell. Value equality of distinct cells never makes handles identical.
func (r Ref[T]) Eq(other Ref[T]) bool {
	return r.s == other.s
}

// Unwrap takes the value out of a handle, giving up ownership. A unique owner
// gets the value moved out with no copy; a sharing owner gets a clone, and
// the remaining owners keep the original value.
func Unwrap[T any](r Ref[T], clone func(T) T) T {
	assertThat(r.s != nil, "attempt to unwrap nil handle")
	if r.IsUnique() {
		value := r.s.value
		r.Release()
		return value
	}
	value := clone(r.s.value)
	r.Release()
	return value
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ref: "+msg, msgargs...)
		panic(msg)
	}
}
