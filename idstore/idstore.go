package idstore

import (
	"fmt"
	"os"

	"github.com/eapache/queue"
	"github.com/npillmayer/pools"
)

// ID is the handle type of this backend: an index into the pool's side
// table. Identity of handles is plain integer equality. The zero ID is never
// handed out and may serve callers as a "no handle" marker.
type ID uint64

// Pool is an id-indexed pool for values of type T, bound to a filesystem
// directory.
type Pool[T any] struct {
	dir   string
	table map[ID]*T
	next  ID           // highest id handed out so far
	freed *queue.Queue // released ids, reused before next is advanced
	clone pools.Cloner[T]
}

var _ pools.ClonePool[int, ID] = (*Pool[int])(nil)
var _ pools.DefaultPool[int, ID] = (*Pool[int])(nil)

// New creates a pool bound to the given directory, creating it (including
// parents) if necessary. Failure to create the directory aborts pool
// construction; there is no retry. The advisory size pre-sizes the side
// table and cannot make construction fail.
func New[T any](dir string, size int, opts ...Option[T]) (*Pool[T], error) {
	assertThat(size >= 0, "advisory pool capacity must not be negative: %d", size)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("idstore: cannot create store directory: %w", err)
	}
	p := &Pool[T]{
		dir:   dir,
		table: make(map[ID]*T, size),
		freed: queue.New(),
		clone: pools.ShallowClone[T],
	}
	for _, option := range opts {
		option(p)
	}
	tracer().Infof("id store bound to directory %q", dir)
	return p, nil
}

// Option is a type to help initializing pools at creation time.
type Option[T any] func(*Pool[T])

// WithCloner sets the copy primitive MakeMut uses. Without it, values are
// copied by plain assignment.
func WithCloner[T any](clone pools.Cloner[T]) Option[T] {
	return func(p *Pool[T]) {
		p.clone = clone
	}
}

// Dir returns the directory the pool is bound to.
func (p *Pool[T]) Dir() string {
	return p.dir
}

// Fill is a no-op for this backend: the side table's capacity was applied at
// construction, and ids cost nothing to preallocate.
func (p *Pool[T]) Fill() {}

// PoolSize returns the number of released ids ready for reuse.
func (p *Pool[T]) PoolSize() int {
	return p.freed.Length()
}

// Len returns the number of live entries in the side table.
func (p *Pool[T]) Len() int {
	return len(p.table)
}

// NewRef takes ownership of value, records it in the side table and returns
// its id. Released ids are reused before the id sequence is advanced; the
// value is recorded under exactly the id returned.
func (p *Pool[T]) NewRef(value T) ID {
	var id ID
	if p.freed.Length() > 0 {
		id = p.freed.Remove().(ID)
		tracer().Debugf("reusing released id %d", id)
	} else {
		p.next++
		id = p.next
	}
	v := value
	p.table[id] = &v
	return id
}

// PtrEq reports whether two handles stem from the same allocation, which for
// integer ids is integer equality.
func (p *Pool[T]) PtrEq(a, b ID) bool {
	return a == b
}

// Get returns a read view of the value recorded under id.
func (p *Pool[T]) Get(id ID) *T {
	v, ok := p.table[id]
	assertThat(ok, "no value recorded under id %d", id)
	return v
}

// MakeMut returns an exclusive mutable view of the value behind id. The pool
// cannot tell how many copies of an id exist, so the value is always cloned:
// the clone is recorded under a fresh id, id is re-bound to it, and the view
// points into the clone. Holders of the old id keep seeing the old value.
func (p *Pool[T]) MakeMut(id *ID) *T {
	v, ok := p.table[*id]
	assertThat(ok, "no value recorded under id %d", *id)
	tracer().Debugf("make_mut: cloning value of id %d under a fresh id", *id)
	*id = p.NewRef(p.clone(*v))
	return p.table[*id]
}

// DefaultRef records T's zero value under a fresh id. This backend offers no
// sharing of a canonical zero instance.
func (p *Pool[T]) DefaultRef() ID {
	var none T
	return p.NewRef(none)
}

// Release removes the value recorded under id and queues the id for reuse.
// Releasing an id twice, or an id still copied elsewhere, is a caller error
// the pool cannot detect; the structure built on top owns that discipline.
func (p *Pool[T]) Release(id ID) {
	_, ok := p.table[id]
	assertThat(ok, "attempt to release unknown id %d", id)
	delete(p.table, id)
	p.freed.Add(id)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("idstore: "+msg, msgargs...)
		panic(msg)
	}
}
