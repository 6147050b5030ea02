/*
Package idstore implements an id-indexed pool backend. Instead of in-process
pointers, handles are plain integer ids into a side table owned by the pool;
the pool is bound to a filesystem directory which serves as the mount point
for eventual on-disk persistence of the table (no value file format is defined
here — the side table lives in memory). The backend exists to demonstrate that
structures written against the pool capabilities run unchanged over storage
that is not process memory.

Integer handles carry no ownership count, so this backend cannot detect unique
ownership. Its copy-on-write operation therefore always clones: the current
value is copied under a fresh id and the handle re-bound to it. That is
correct — no other holder of the old id ever observes the mutation — but
forgoes the in-place optimization package mempool offers.
*/
package idstore

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pools.idstore'.
func tracer() tracing.Trace {
	return tracing.Select("pools.idstore")
}
