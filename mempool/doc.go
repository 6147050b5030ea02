/*
Package mempool implements the default, in-process pool backend. Storage cells
are preallocated in chunks and handed out wrapped in reference-counted handles
(package ref); cells whose last owner releases flow back into the pool, up to
the pool's advisory capacity. Copy-on-write mutation inspects the ownership
count: a uniquely owned node is edited in place, a shared node is cloned into
a cell drawn from the pool first.

This is the backend actual persistent-structure code is expected to run on.
*/
package mempool

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pools.mempool'.
func tracer() tracing.Trace {
	return tracing.Select("pools.mempool")
}
