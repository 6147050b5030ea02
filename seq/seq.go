/*
Package seq collects small generic helpers for index-based containers: an
index swap that needs no placeholder element, normalization of interval bounds
to half-open ranges, and a linear search over ascending sequences. The data
structures built atop the pool backends use these; nothing in here depends on
pooling itself.
*/
package seq

// MutIndexed is the minimal view of a mutably-indexable container. Both
// operations require the position to be in bounds; bounds discipline is the
// caller's responsibility.
type MutIndexed[T any] interface {
	At(i int) T
	SetAt(i int, value T)
}

// Slice adapts a plain Go slice to MutIndexed.
type Slice[T any] []T

func (s Slice[T]) At(i int) T {
	return s[i]
}

func (s Slice[T]) SetAt(i int, value T) {
	s[i] = value
}

// SwapIndices exchanges the elements at positions a and b of any mutably
// indexable container. The exchange is take-and-replace, so the element type
// needs no default or placeholder value. Swapping a position with itself is
// a no-op.
func SwapIndices[T any](v MutIndexed[T], a, b int) {
	if a == b {
		return
	}
	tmp := v.At(a)
	v.SetAt(a, v.At(b))
	v.SetAt(b, tmp)
}
