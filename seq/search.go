package seq

// LinearSearchBy scans a sequence assumed sorted ascending under cmp. cmp
// probes one element and returns a negative number if the element sorts
// before the wanted one, zero on a match, and a positive number if the
// element sorts after it.
//
// The index of the first matching element is returned with found=true. If no
// element matches, the insertion index is returned instead: the index of the
// first element sorting after the wanted one, or the sequence length if the
// scan ran off the end. The contract matches a binary search's insertion
// point, so callers may substitute one for the other; only performance
// differs.
func LinearSearchBy[T any](elements []T, cmp func(T) int) (pos int, found bool) {
	for i, element := range elements {
		switch c := cmp(element); {
		case c == 0:
			return i, true
		case c > 0:
			return i, false
		}
	}
	return len(elements), false
}
