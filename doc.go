/*
Package pools decouples how a collection node is stored and owned from what
the node is. Persistent (immutable, structurally shared) data structures create
lots of small, short-lived nodes; most of them are shared between incarnations
of a structure and must never be mutated while anyone else can still see them.
This package provides the memory-ownership abstraction such structures allocate
their nodes through: a pool hands out opaque handles, reads through a handle
are free, and the first write to a shared node transparently copies it
(copy-on-write).

Pools come in capability sets. Every backend offers base allocation (NewRef,
PtrEq); backends whose value type is cloneable additionally offer
copy-on-write mutation (MakeMut), and backends whose value type has a usable
zero value offer default-value allocation (DefaultRef). Data structures are
written against these interfaces and never inspect which backend they run on.
Two backends ship with this module: package mempool, an in-process pool of
preallocated, reference-counted storage cells, and package idstore, an
id-indexed store bound to a filesystem directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pools
