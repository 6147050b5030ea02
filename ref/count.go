//go:build !threadsafe

package ref

// count is the ownership counter used in builds without the `threadsafe` tag.
// Increments and decrements are plain integer arithmetic; handles counted this
// way must stay confined to a single goroutine.
type count int32

func (c *count) incr() int32 {
	*c++
	return int32(*c)
}

func (c *count) decr() int32 {
	*c--
	return int32(*c)
}

func (c *count) load() int32 {
	return int32(*c)
}
