package ordmap

import (
	"cmp"
	"fmt"

	"pgregory.net/rapid"
)

// Arbitrary returns a generator of randomized map fixtures whose length lies
// within [min, max), for use with rapid's property checks.
//
// Generation oversamples rather than aiming for an exact size: up to max-1
// key/value pairs are drawn and the map is built from them, which collapses
// duplicate keys. Samples whose deduplicated length fell below min are
// rejected, and the harness redraws them.
//
// Use it like this:
//
//	rapid.Check(t, func(t *rapid.T) {
//		m := ordmap.Arbitrary(rapid.IntRange(0, 9999), rapid.String(), 10, 100).Draw(t, "m")
//		// m.Len() is ≥ 10 and < 100 here
//	})
func Arbitrary[K cmp.Ordered, V any](key *rapid.Generator[K], value *rapid.Generator[V], min, max int) *rapid.Generator[Map[K, V]] {
	if min < 0 || max <= min {
		panic(fmt.Sprintf("ordmap: invalid fixture size bounds [%d,%d)", min, max))
	}
	entry := rapid.Custom(func(t *rapid.T) Entry[K, V] {
		return Entry[K, V]{
			Key:   key.Draw(t, "key"),
			Value: value.Draw(t, "value"),
		}
	})
	entries := rapid.SliceOfN(entry, min, max-1)
	return rapid.Custom(func(t *rapid.T) Map[K, V] {
		return From(entries.Draw(t, "entries"))
	}).Filter(func(m Map[K, V]) bool {
		return m.Len() >= min // dedup by key may have dropped entries
	})
}
