package ordmap

import (
	"cmp"

	"github.com/npillmayer/pools/lazy"
	"github.com/npillmayer/pools/mempool"
	"github.com/npillmayer/pools/ref"
)

const defaultPoolSize = 128

// Entry is a key/value pair of a map.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Map is a persistent ordered map. An empty instance is usable as an empty
// map, i.e. this is legal:
//
//	m := ordmap.Map[int, int]{}.With(1, 42)
//
// returning a map containing entry ⟨1⟩ associated with value 42. All
// incarnations derived from one map share a node pool; the pool is mutable
// infrastructure, the map incarnations are values.
type Map[K cmp.Ordered, V any] struct {
	pool *mempool.Pool[xnode[K, V]]
	root ref.Ref[xnode[K, V]]
}

// Immutable constructs an ordered map with options, if you need any.
func Immutable[K cmp.Ordered, V any](opts ...Option) Map[K, V] {
	p := props{size: defaultPoolSize}
	for _, option := range opts {
		p = option(p)
	}
	return Map[K, V]{pool: newNodePool[K, V](p.size)}
}

// From builds a map from a sequence of entries. Later entries win over
// earlier ones with the same key.
func From[K cmp.Ordered, V any](entries []Entry[K, V], opts ...Option) Map[K, V] {
	m := Immutable[K, V](opts...)
	for _, e := range entries {
		m = m.With(e.Key, e.Value)
	}
	return m
}

// Option is a type to help initializing maps at creation time.
type Option func(props) props

type props struct {
	size int
}

// PoolSize is an option to set the advisory capacity of the node pool backing
// the map.
func PoolSize(n int) Option {
	return func(p props) props {
		if n >= 0 {
			p.size = n
		}
		return p
	}
}

// --- API -------------------------------------------------------------------

// Find locates a key in a map, if present, and returns the value associated
// with the key. If key is not found, the zero value for type V will be
// returned, together with found=false.
func (m Map[K, V]) Find(key K) (V, bool) {
	var none V
	if m.root.IsNil() {
		return none, false
	}
	node := m.root.Get()
	at, found := node.findSlot(key)
	if !found {
		return none, false
	}
	return node.entries[at].Value, true
}

// Len returns the number of entries in a map.
func (m Map[K, V]) Len() int {
	if m.root.IsNil() {
		return 0
	}
	return len(m.root.Get().entries)
}

// With returns a copy of a map with a new key inserted, which is associated
// with value. If an entry for key is already present, the associated value
// will be replaced (in a new incarnation of the map, nevertheless).
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	m = m.ensurePool()
	if m.root.IsNil() { // virgin map => create root node and return
		m.root = m.pool.NewRef(xnode[K, V]{entries: []Entry[K, V]{{Key: key, Value: value}}})
		return m
	}
	at, found := m.root.Get().findSlot(key)
	tracer().Debugf("insert: slot for key=%v is %d (found=%v)", key, at, found)
	cow := m.root.Clone()
	node := m.pool.MakeMut(&cow) // copy-on-write
	if found {
		node.entries[at].Value = value
	} else {
		node.entries = append(node.entries, Entry[K, V]{})
		copy(node.entries[at+1:], node.entries[at:])
		node.entries[at] = Entry[K, V]{Key: key, Value: value}
	}
	m.root = cow
	return m
}

// WithDeleted returns a copy of a map with key deleted, if present. If key is
// not found, the map is returned unchanged.
func (m Map[K, V]) WithDeleted(key K) Map[K, V] {
	if m.root.IsNil() {
		return m
	}
	at, found := m.root.Get().findSlot(key)
	if !found {
		return m // no need for modification
	}
	tracer().Debugf("deletion: slot for key=%v is %d", key, at)
	cow := m.root.Clone()
	node := m.pool.MakeMut(&cow) // copy-on-write
	node.entries = append(node.entries[:at], node.entries[at+1:]...)
	m.root = cow
	return m
}

// Entries returns a one-pass cursor over the map's entries in ascending key
// order. The cursor stays valid regardless of later incarnations derived
// from m.
func (m Map[K, V]) Entries() *lazy.Iter[Entry[K, V]] {
	var entries []Entry[K, V]
	if !m.root.IsNil() {
		entries = m.root.Get().entries
	}
	return lazy.Unfold(0, func(i int) (Entry[K, V], int, bool) {
		if i >= len(entries) {
			var none Entry[K, V]
			return none, i, false
		}
		return entries[i], i + 1, true
	})
}

// Release gives up this incarnation's ownership of its root node, allowing
// the pool to recycle the node's storage once no other incarnation shares
// it. Optional: incarnations that are simply dropped are reclaimed by the
// garbage collector, just without refilling the pool.
func (m Map[K, V]) Release() {
	m.root.Release()
}
