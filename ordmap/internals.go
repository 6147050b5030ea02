package ordmap

import (
	"cmp"

	"github.com/npillmayer/pools/mempool"
	"github.com/npillmayer/pools/seq"
)

// xnode is the single storage node of a map: its entries, sorted ascending
// by key. Nodes are pool-owned and must only be mutated through the pool's
// copy-on-write operation.
type xnode[K cmp.Ordered, V any] struct {
	entries []Entry[K, V]
}

// findSlot locates key among the node's entries, or the slot where it would
// be inserted.
func (node *xnode[K, V]) findSlot(key K) (int, bool) {
	return seq.LinearSearchBy(node.entries, func(e Entry[K, V]) int {
		return cmp.Compare(e.Key, key)
	})
}

// cloneNode is the pool's copy primitive: entry slices are backing storage
// and must not be shared between node incarnations.
func cloneNode[K cmp.Ordered, V any](node xnode[K, V]) xnode[K, V] {
	entries := make([]Entry[K, V], len(node.entries))
	copy(entries, node.entries)
	return xnode[K, V]{entries: entries}
}

func newNodePool[K cmp.Ordered, V any](size int) *mempool.Pool[xnode[K, V]] {
	return mempool.New[xnode[K, V]](size, mempool.WithCloner(cloneNode[K, V]))
}

// ensurePool makes the zero-value Map usable by lazily attaching a pool.
func (m Map[K, V]) ensurePool() Map[K, V] {
	if m.pool == nil {
		m.pool = newNodePool[K, V](defaultPoolSize)
	}
	return m
}
