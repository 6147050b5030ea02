package ordmap

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"pgregory.net/rapid"
)

func TestArbitrarySizeBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pools.ordmap")
	defer teardown()
	//
	gen := Arbitrary(rapid.IntRange(0, 9999), rapid.String(), 10, 100)
	rapid.Check(t, func(t *rapid.T) {
		m := gen.Draw(t, "m")
		if m.Len() < 10 {
			t.Errorf("expected fixture of length ≥ 10, is %d", m.Len())
		}
		if m.Len() >= 100 {
			t.Errorf("expected fixture of length < 100, is %d", m.Len())
		}
	})
}

func TestArbitraryEntriesSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pools.ordmap")
	defer teardown()
	//
	gen := Arbitrary(rapid.Int(), rapid.Bool(), 1, 50)
	rapid.Check(t, func(t *rapid.T) {
		m := gen.Draw(t, "m")
		entries := m.Entries().Collect()
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Key >= entries[i].Key {
				t.Fatalf("expected strictly ascending keys, got %d before %d",
					entries[i-1].Key, entries[i].Key)
			}
		}
	})
}

func TestArbitraryRejectsInvalidBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected invalid size bounds to panic")
		}
	}()
	Arbitrary(rapid.Int(), rapid.Int(), 10, 10)
}
