/*
Package lazy provides lazy sequences over immutable data.
*/
package lazy

// Iter is a one-pass cursor over a lazily produced sequence. It is not
// restartable: once exhausted it stays exhausted, and rewinding requires
// reconstructing the iterator from its original seed.
type Iter[A any] struct {
	next func() (A, bool)
}

// Next pulls the next value from the sequence. After the sequence ends, Next
// keeps returning ok=false.
func (it *Iter[A]) Next() (A, bool) {
	return it.next()
}

// Collect drains the remainder of the sequence into a slice.
func (it *Iter[A]) Collect() []A {
	var values []A
	for {
		value, ok := it.Next()
		if !ok {
			return values
		}
		values = append(values, value)
	}
}

// Unfold creates an iterator of values from a seed state and a step function.
// step is called with the current state and returns the next value to yield
// together with the successor state, or ok=false to end the sequence. A
// single state is in flight at a time; each pull consumes it and may replace
// it. The sequence is finite iff step eventually returns ok=false.
func Unfold[S, A any](seed S, step func(S) (A, S, bool)) *Iter[A] {
	state := seed
	done := false
	return &Iter[A]{
		next: func() (A, bool) {
			var none A
			if done {
				return none, false
			}
			value, successor, ok := step(state)
			if !ok {
				done = true
				return none, false
			}
			state = successor
			return value, true
		},
	}
}
