/*
Package ordmap implements a small persistent (immutable) ordered map on top of
the pool abstraction. It is deliberately minimal — entries live sorted in a
single pooled node — and exists to exercise every pool capability the way a
full structural-sharing collection would: nodes are allocated through NewRef,
lookups read through shared handles, and every modification goes through the
pool's copy-on-write operation, so older incarnations of a map are never
disturbed.

Use it like this:

	m := ordmap.Immutable[int, string]()
	m = m.With(42, "Galaxy")
	value, found := m.Find(42)   // returns "Galaxy"
*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pools.ordmap'.
func tracer() tracing.Trace {
	return tracing.Select("pools.ordmap")
}
