package ref

import "testing"

func TestHandleIdentity(t *testing.T) {
	a := New(42)
	b := a.Clone()
	if !a.Eq(b) {
		t.Error("expected clone of handle to be identical to the handle")
	}
	c := New(42)
	if a.Eq(c) {
		t.Error("expected separately allocated handles to be non-identical, even with equal values")
	}
}

func TestUniqueOwnership(t *testing.T) {
	a := New("node")
	if !a.IsUnique() {
		t.Error("expected fresh handle to be the unique owner")
	}
	b := a.Clone()
	if a.IsUnique() || b.IsUnique() {
		t.Error("expected neither of two owners to be unique")
	}
	b.Release()
	if !a.IsUnique() {
		t.Error("expected handle to be unique again after co-owner released")
	}
}

func TestUnwrapUniqueOwnerMovesValue(t *testing.T) {
	clones := 0
	clone := func(v int) int {
		clones++
		return v
	}
	r := New(7)
	v := Unwrap(r, clone)
	if v != 7 {
		t.Errorf("expected unwrapped value to be 7, is %d", v)
	}
	if clones != 0 {
		t.Errorf("expected no clone for a uniquely owned handle, counted %d", clones)
	}
}

func TestUnwrapSharedOwnerClonesValue(t *testing.T) {
	clones := 0
	clone := func(v int) int {
		clones++
		return v
	}
	r := New(7)
	s := r.Clone()
	v := Unwrap(s, clone)
	if v != 7 {
		t.Errorf("expected unwrapped value to be 7, is %d", v)
	}
	if clones != 1 {
		t.Errorf("expected exactly one clone for a shared handle, counted %d", clones)
	}
	if *r.Get() != 7 {
		t.Errorf("expected remaining owner to still see 7, sees %d", *r.Get())
	}
	if !r.IsUnique() {
		t.Error("expected remaining owner to be unique after co-owner unwrapped")
	}
}

func TestRecyclerRunsAtZero(t *testing.T) {
	var spent *Slot[int]
	r := NewWithRecycler(5, func(s *Slot[int]) {
		spent = s
	})
	s := r.Clone()
	r.Release()
	if spent != nil {
		t.Error("expected recycler not to run while an owner remains")
	}
	s.Release()
	if spent == nil {
		t.Fatal("expected recycler to run when the last owner released")
	}
	revived := Revive(spent, 11)
	if *revived.Get() != 11 {
		t.Errorf("expected revived cell to hold 11, holds %d", *revived.Get())
	}
}

func TestNilHandle(t *testing.T) {
	var r Ref[int]
	if !r.IsNil() {
		t.Error("expected zero-value handle to be nil")
	}
	r.Release() // must not panic
	if r.Clone().IsNil() != true {
		t.Error("expected clone of nil handle to be nil")
	}
	if r.IsUnique() {
		t.Error("expected nil handle not to be unique")
	}
}
