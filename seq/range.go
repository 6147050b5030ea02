package seq

import "fmt"

type boundKind int8

const (
	included boundKind = iota
	excluded
	unbounded
)

// Bound designates one end of an integer interval: at a position inclusively
// or exclusively, or open-ended.
type Bound struct {
	kind boundKind
	at   int
}

// Included bounds an interval at position i, with i belonging to the
// interval.
func Included(i int) Bound {
	return Bound{kind: included, at: i}
}

// Excluded bounds an interval at position i, with i not belonging to the
// interval.
func Excluded(i int) Bound {
	return Bound{kind: excluded, at: i}
}

// Unbounded leaves an interval end open.
func Unbounded() Bound {
	return Bound{kind: unbounded}
}

func (b Bound) String() string {
	switch b.kind {
	case included:
		return fmt.Sprintf("incl(%d)", b.at)
	case excluded:
		return fmt.Sprintf("excl(%d)", b.at)
	}
	return "open"
}

// Range is the canonical half-open integer interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of positions the range covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// ToRange normalizes an interval given by two bounds to a half-open range.
// An open-ended end is substituted by rightUnbounded, an open-ended start by
// zero. For internally consistent bounds the result satisfies Start ≤ End.
func ToRange(start, end Bound, rightUnbounded int) Range {
	var r Range
	switch start.kind {
	case included:
		r.Start = start.at
	case excluded:
		r.Start = start.at + 1
	case unbounded:
		r.Start = 0
	}
	switch end.kind {
	case included:
		r.End = end.at + 1
	case excluded:
		r.End = end.at
	case unbounded:
		r.End = rightUnbounded
	}
	return r
}
