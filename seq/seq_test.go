package seq

import (
	"cmp"
	"testing"
)

func TestSwapIndices(t *testing.T) {
	v := Slice[string]{"a", "b", "c", "d"}
	SwapIndices[string](v, 1, 3)
	if v[1] != "d" || v[3] != "b" {
		t.Errorf("expected elements 1 and 3 to be exchanged, is %v", v)
	}
	SwapIndices[string](v, 1, 3) // swapping twice restores the original
	for i, s := range []string{"a", "b", "c", "d"} {
		if v[i] != s {
			t.Errorf("expected double swap to restore %q at %d, is %q", s, i, v[i])
		}
	}
}

func TestSwapIndexWithItself(t *testing.T) {
	v := Slice[int]{10, 20, 30}
	SwapIndices[int](v, 2, 2)
	if v[0] != 10 || v[1] != 20 || v[2] != 30 {
		t.Errorf("expected swap of a position with itself to be a no-op, is %v", v)
	}
}

// pair has no meaningful default value; SwapIndices must not need one.
type pair struct {
	key   string
	value int
}

type pairs []pair

func (p pairs) At(i int) pair          { return p[i] }
func (p pairs) SetAt(i int, item pair) { p[i] = item }

func TestSwapIndicesOnCustomContainer(t *testing.T) {
	p := pairs{{"x", 1}, {"y", 2}}
	SwapIndices[pair](p, 0, 1)
	if p[0].key != "y" || p[1].key != "x" {
		t.Errorf("expected pairs to be exchanged, is %v", p)
	}
}

func TestToRange(t *testing.T) {
	cases := []struct {
		start, end Bound
		from, to   int
	}{
		{Included(2), Included(5), 2, 6},
		{Included(2), Excluded(5), 2, 5},
		{Included(2), Unbounded(), 2, 10},
		{Excluded(2), Included(5), 3, 6},
		{Excluded(2), Excluded(5), 3, 5},
		{Excluded(2), Unbounded(), 3, 10},
		{Unbounded(), Included(5), 0, 6},
		{Unbounded(), Excluded(5), 0, 5},
		{Unbounded(), Unbounded(), 0, 10},
	}
	for i, c := range cases {
		r := ToRange(c.start, c.end, 10)
		if r.Start != c.from || r.End != c.to {
			t.Errorf("%d: expected %s..%s to normalize to %d..%d, is %d..%d",
				i, c.start, c.end, c.from, c.to, r.Start, r.End)
		}
	}
}

func TestRangeLen(t *testing.T) {
	r := ToRange(Excluded(2), Included(5), 10)
	if r.Len() != 3 {
		t.Errorf("expected range 3..6 to cover 3 positions, covers %d", r.Len())
	}
}

func TestLinearSearchBy(t *testing.T) {
	elements := []int{1, 3, 5, 7}
	cases := []struct {
		wanted int
		pos    int
		found  bool
	}{
		{5, 2, true},
		{4, 2, false},
		{8, 4, false},
		{0, 0, false},
		{1, 0, true},
		{7, 3, true},
	}
	for i, c := range cases {
		pos, found := LinearSearchBy(elements, func(el int) int { return cmp.Compare(el, c.wanted) })
		if pos != c.pos || found != c.found {
			t.Errorf("%d: expected search for %d to yield (%d,%v), yields (%d,%v)",
				i, c.wanted, c.pos, c.found, pos, found)
		}
	}
}

func TestLinearSearchEmpty(t *testing.T) {
	pos, found := LinearSearchBy(nil, func(el int) int { return cmp.Compare(el, 3) })
	if found || pos != 0 {
		t.Errorf("expected search in empty sequence to yield insertion index 0, yields (%d,%v)", pos, found)
	}
}
