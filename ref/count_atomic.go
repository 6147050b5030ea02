//go:build threadsafe

package ref

import "sync/atomic"

// count is the ownership counter used in builds with the `threadsafe` tag.
// Counting is atomic, so handles may be cloned and released from arbitrary
// goroutines. Mutation of the pointee still requires external exclusion.
type count struct {
	n int32
}

func (c *count) incr() int32 {
	return atomic.AddInt32(&c.n, 1)
}

func (c *count) decr() int32 {
	return atomic.AddInt32(&c.n, -1)
}

func (c *count) load() int32 {
	return atomic.LoadInt32(&c.n)
}
