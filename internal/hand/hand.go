// Package hand implements the fixed five-resource count vector used to
// represent a player's holdings, a trade offer, or a purchase cost.
package hand

import (
	"regexp"

	"github.com/chariotsofiron/colonizer/internal/resource"
)

// Hand is a componentwise count of each resource kind.
type Hand [resource.NumResources]uint8

// Pair is one (Resource, count) entry yielded by All.
type Pair struct {
	Resource resource.Resource
	Count    uint8
}

// Unit returns a Hand holding exactly one card of r.
func Unit(r resource.Resource) Hand {
	var h Hand
	h[r] = 1
	return h
}

var reCard = regexp.MustCompile(`lumber|brick|wool|grain|ore`)

// Parse scans text for resource-name substrings and counts them, matching
// the overlap-free tokenization the game client's concatenated card list
// produces (e.g. "grainlumberwool" -> one of each).
func Parse(text string) Hand {
	var h Hand
	for _, token := range reCard.FindAllString(text, -1) {
		r, ok := resource.Parse(token)
		if !ok {
			continue
		}
		h[r]++
	}
	return h
}

// Add returns the componentwise sum a + b.
func (a Hand) Add(b Hand) Hand {
	var out Hand
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub returns the componentwise difference a - b. The caller must ensure
// a.GTE(b); otherwise this underflows uint8 (CardTracker.Remove always
// gates this with KnowHas first).
func (a Hand) Sub(b Hand) Hand {
	var out Hand
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

// GTE reports whether every component of a is >= the corresponding
// component of b.
func (a Hand) GTE(b Hand) bool {
	for i := range a {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}

// At returns the count of r held in this hand.
func (a Hand) At(r resource.Resource) uint8 {
	return a[r]
}

// All returns the five (Resource, count) pairs in resource order.
func (a Hand) All() [resource.NumResources]Pair {
	var out [resource.NumResources]Pair
	for i, r := range resource.All {
		out[i] = Pair{Resource: r, Count: a[r]}
	}
	return out
}
