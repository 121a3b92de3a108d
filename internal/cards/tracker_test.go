package cards

import (
	"testing"

	"github.com/chariotsofiron/colonizer/internal/hand"
	"github.com/chariotsofiron/colonizer/internal/resource"
)

func TestAddUnit(t *testing.T) {
	tr := NewCardTracker()
	tr.Add(0, hand.Unit(resource.Brick))

	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
	got := tr.states[0].state[0]
	if got != (hand.Hand{0, 1, 0, 0, 0}) {
		t.Fatalf("seat 0 hand = %v, want [0,1,0,0,0]", got)
	}
	if tr.states[0].freq != 1 {
		t.Fatalf("freq = %d, want 1", tr.states[0].freq)
	}
}

func TestRobUnknownExpandsAndNormalizes(t *testing.T) {
	tr := NewCardTracker()
	tr.Add(0, hand.Hand{5, 7, 9, 13, 15})
	tr.Add(1, hand.Hand{12, 11, 6, 5, 3})

	tr.Rob(1, 0)
	tr.Rob(1, 0)
	tr.Rob(1, 0)
	tr.Rob(0, 1)
	tr.Rob(0, 1)
	tr.Rob(0, 1)

	if tr.Len() != 471 {
		t.Fatalf("Len() = %d, want 471 (regression anchor)", tr.Len())
	}
}

func TestPurchaseViaRemove(t *testing.T) {
	tr := NewCardTracker()
	tr.Add(0, hand.Hand{2, 2, 1, 1, 1})
	tr.Remove(0, hand.Hand{1, 1, 1, 1, 0}) // Settlement cost

	got := tr.states[0].state[0]
	want := hand.Hand{1, 1, 0, 0, 1}
	if got != want {
		t.Fatalf("seat 0 hand = %v, want %v", got, want)
	}
}

func TestMonopolyConsistencyAndTransfer(t *testing.T) {
	tr := NewCardTracker()
	tr.Add(0, hand.Unit(resource.Grain))
	tr.Add(0, hand.Unit(resource.Grain))
	tr.Add(1, hand.Unit(resource.Grain))
	tr.Add(1, hand.Unit(resource.Grain))
	tr.Add(2, hand.Unit(resource.Grain))
	tr.Add(2, hand.Unit(resource.Grain))

	tr.Monopoly(0, resource.Grain, 4)

	state := tr.states[0].state
	if state[0].At(resource.Grain) != 6 {
		t.Fatalf("seat 0 grain = %d, want 6", state[0].At(resource.Grain))
	}
	if state[1].At(resource.Grain) != 0 || state[2].At(resource.Grain) != 0 {
		t.Fatalf("other seats' grain should be zeroed, got seat1=%d seat2=%d",
			state[1].At(resource.Grain), state[2].At(resource.Grain))
	}
}

func TestMonopolyWrongCountIsFatal(t *testing.T) {
	tr := NewCardTracker()
	tr.Add(0, hand.Unit(resource.Grain))
	tr.Add(0, hand.Unit(resource.Grain))
	tr.Add(1, hand.Unit(resource.Grain))
	tr.Add(1, hand.Unit(resource.Grain))
	tr.Add(2, hand.Unit(resource.Grain))
	tr.Add(2, hand.Unit(resource.Grain))

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on inconsistent monopoly count")
		} else if _, ok := r.(*InconsistentLogError); !ok {
			t.Fatalf("expected *InconsistentLogError, got %T (%v)", r, r)
		}
	}()
	tr.Monopoly(0, resource.Grain, 3)
}

func TestKnowHasEmptyIsFatal(t *testing.T) {
	tr := NewCardTracker()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	tr.KnowHas(0, hand.Unit(resource.Ore))
}

func TestAddAddEquivalentToAddSum(t *testing.T) {
	h1 := hand.Hand{1, 0, 0, 0, 0}
	h2 := hand.Hand{0, 2, 0, 0, 0}

	a := NewCardTracker()
	a.Add(0, h1)
	a.Add(0, h2)

	b := NewCardTracker()
	b.Add(0, h1.Add(h2))

	if a.states[0].state != b.states[0].state {
		t.Fatalf("add/add = %v, add-sum = %v", a.states[0].state, b.states[0].state)
	}
}

func TestAddRemoveRestores(t *testing.T) {
	tr := NewCardTracker()
	original := tr.states[0].state

	h := hand.Hand{1, 2, 0, 3, 0}
	tr.Add(0, h)
	tr.Remove(0, h)

	if tr.states[0].state != original {
		t.Fatalf("add/remove roundtrip = %v, want %v", tr.states[0].state, original)
	}
}

func TestKnowHasIdempotent(t *testing.T) {
	tr := NewCardTracker()
	tr.Add(0, hand.Hand{3, 0, 0, 0, 0})
	tr.KnowHas(0, hand.Unit(resource.Lumber))
	before := tr.Len()
	tr.KnowHas(0, hand.Unit(resource.Lumber))
	if tr.Len() != before {
		t.Fatalf("Len() changed after idempotent KnowHas: %d -> %d", before, tr.Len())
	}
}

func TestRobCommutesInExpectedCounts(t *testing.T) {
	newTracker := func() *CardTracker {
		tr := NewCardTracker()
		tr.Add(0, hand.Hand{4, 4, 4, 4, 4})
		tr.Add(1, hand.Hand{2, 2, 2, 2, 2})
		return tr
	}

	a := newTracker()
	a.Rob(1, 0)
	a.Rob(0, 1)

	b := newTracker()
	b.Rob(0, 1)
	b.Rob(1, 0)

	ea, eb := a.Expected(), b.Expected()
	for p := 0; p < MaxPlayers; p++ {
		for _, r := range resource.All {
			if diff := ea[p][r] - eb[p][r]; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("expected[%d][%v] differs by rob order: %v vs %v", p, r, ea[p][r], eb[p][r])
			}
		}
	}
}

func TestTableRobChanceSumsToOne(t *testing.T) {
	tr := NewCardTracker()
	tr.Add(0, hand.Hand{1, 2, 3, 4, 5})
	table := tr.Table()

	var total float64
	for _, r := range resource.All {
		total += table[0][r].RobChance
	}
	if diff := total - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("rob chances sum to %v, want 1", total)
	}
}

func TestTableZeroHandHasNoRobChance(t *testing.T) {
	tr := NewCardTracker()
	table := tr.Table()
	for _, r := range resource.All {
		if table[0][r].RobChance != 0 {
			t.Fatalf("empty-handed seat should have zero rob chance, got %v", table[0][r])
		}
	}
}
