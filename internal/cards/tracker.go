// Package cards implements the belief-state engine that tracks every
// hidden-card distribution consistent with the observed game log.
package cards

import (
	"fmt"

	"github.com/chariotsofiron/colonizer/internal/hand"
	"github.com/chariotsofiron/colonizer/internal/resource"
)

// MaxPlayers is the maximum number of seats the tracker supports.
const MaxPlayers = 6

// State is one hand per seat.
type State [MaxPlayers]hand.Hand

// InconsistentLogError reports that an update emptied the belief
// distribution: the observed log contradicts everything the tracker
// previously believed possible (a parser bug, a missed event, or a
// misattributed player). Always fatal; the caller is expected to let it
// propagate rather than patch state.
type InconsistentLogError struct {
	Op string
}

func (e *InconsistentLogError) Error() string {
	return fmt.Sprintf("card tracker: %s left no states consistent with the log", e.Op)
}

type stateEntry struct {
	state State
	freq  uint32
}

// CardTracker holds every (State, frequency) pair consistent with the
// observed log so far.
type CardTracker struct {
	states []stateEntry
}

// NewCardTracker returns a tracker initialized to a single all-zero state
// with frequency 1.
func NewCardTracker() *CardTracker {
	return &CardTracker{states: []stateEntry{{state: State{}, freq: 1}}}
}

// Len returns the number of distinct states currently tracked.
func (t *CardTracker) Len() int {
	return len(t.states)
}

// Add applies a deterministic gain of cards to player across every state.
func (t *CardTracker) Add(player int, cards hand.Hand) {
	for i := range t.states {
		t.states[i].state[player] = t.states[i].state[player].Add(cards)
	}
}

// KnowHas retains only the states in which player holds at least cards,
// panicking with *InconsistentLogError if that leaves no states.
func (t *CardTracker) KnowHas(player int, cards hand.Hand) {
	kept := t.states[:0]
	for _, e := range t.states {
		if e.state[player].GTE(cards) {
			kept = append(kept, e)
		}
	}
	t.states = kept
	if len(t.states) == 0 {
		panic(&InconsistentLogError{Op: "know_has"})
	}
}

// Remove applies a deterministic loss of cards from player, first narrowing
// the distribution with KnowHas so the subtraction never underflows.
func (t *CardTracker) Remove(player int, cards hand.Hand) {
	t.KnowHas(player, cards)
	for i := range t.states {
		t.states[i].state[player] = t.states[i].state[player].Sub(cards)
	}
}

// Rob handles an unknown-card robbery: robber takes one card from victim,
// drawn uniformly among the cards victim holds. Every state branches into
// up to NumResources children weighted by how many of that resource the
// victim held; duplicate resulting states are merged and the resulting
// frequencies are normalized by their GCD.
func (t *CardTracker) Rob(robber, victim int) {
	results := make(map[State]uint32, len(t.states)*resource.NumResources)
	for _, e := range t.states {
		victimHand := e.state[victim]
		for _, r := range resource.All {
			count := victimHand.At(r)
			if count == 0 {
				continue
			}
			next := e.state
			next[robber] = next[robber].Add(hand.Unit(r))
			next[victim] = next[victim].Sub(hand.Unit(r))
			results[next] += uint32(count) * e.freq
		}
	}

	var g uint32
	for _, f := range results {
		g = gcd(g, f)
	}
	if g == 0 {
		g = 1
	}

	t.states = make([]stateEntry, 0, len(results))
	for s, f := range results {
		t.states = append(t.states, stateEntry{state: s, freq: f / g})
	}
}

// Monopoly handles a monopoly announcement: it reveals that the total of
// resource r across every player other than player is exactly count, then
// transfers that total to player and zeroes it everywhere else.
func (t *CardTracker) Monopoly(player int, r resource.Resource, count uint8) {
	kept := t.states[:0]
	for _, e := range t.states {
		var total uint8
		for p := 0; p < MaxPlayers; p++ {
			if p == player {
				continue
			}
			total += e.state[p].At(r)
		}
		if total == count {
			kept = append(kept, e)
		}
	}
	t.states = kept
	if len(t.states) == 0 {
		panic(&InconsistentLogError{Op: "monopoly"})
	}

	for i := range t.states {
		for p := 0; p < MaxPlayers; p++ {
			if p == player {
				t.states[i].state[p][r] += count
			} else {
				t.states[i].state[p][r] = 0
			}
		}
	}
}

// Expected computes the mean holdings of each (player, resource) cell over
// the belief distribution.
func (t *CardTracker) Expected() [MaxPlayers][resource.NumResources]float64 {
	var total uint64
	for _, e := range t.states {
		total += uint64(e.freq)
	}

	var expected [MaxPlayers][resource.NumResources]float64
	if total == 0 {
		return expected
	}
	// Weighted sums are accumulated as integers so the result does not
	// depend on the (unordered) order in which states are stored.
	var sums [MaxPlayers][resource.NumResources]uint64
	for _, e := range t.states {
		for p := 0; p < MaxPlayers; p++ {
			for _, r := range resource.All {
				sums[p][r] += uint64(e.state[p].At(r)) * uint64(e.freq)
			}
		}
	}
	for p := 0; p < MaxPlayers; p++ {
		for _, r := range resource.All {
			expected[p][r] = float64(sums[p][r]) / float64(total)
		}
	}
	return expected
}

// Sure computes the componentwise minimum holdings across every state: the
// amount of each resource a player is guaranteed to hold.
func (t *CardTracker) Sure() State {
	sure := t.states[0].state
	for _, e := range t.states[1:] {
		for p := 0; p < MaxPlayers; p++ {
			for _, r := range resource.All {
				if v := e.state[p].At(r); v < sure[p].At(r) {
					sure[p][r] = v
				}
			}
		}
	}
	return sure
}

// Cell is one public summary entry for a (player, resource) pair.
type Cell struct {
	Sure      uint8
	Expected  float64
	RobChance float64
}

// Table returns the public (sure, expected, rob_chance) summary for every
// (player, resource) cell.
func (t *CardTracker) Table() [MaxPlayers][resource.NumResources]Cell {
	sure := t.Sure()
	expected := t.Expected()

	var table [MaxPlayers][resource.NumResources]Cell
	for p := 0; p < MaxPlayers; p++ {
		var rowTotal float64
		for _, r := range resource.All {
			rowTotal += expected[p][r]
		}
		for _, r := range resource.All {
			robChance := 0.0
			if rowTotal > 0 {
				robChance = expected[p][r] / rowTotal
			}
			table[p][r] = Cell{
				Sure:      sure[p].At(r),
				Expected:  expected[p][r],
				RobChance: robChance,
			}
		}
	}
	return table
}
