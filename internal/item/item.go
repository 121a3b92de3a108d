// Package item defines the purchasable items and their fixed resource costs.
package item

import "github.com/chariotsofiron/colonizer/internal/hand"

// Item is one of the four purchasable game pieces.
type Item int

const (
	Road Item = iota
	Settlement
	City
	DevelopmentCard
)

// Cost returns the fixed resource cost of purchasing the item.
func (i Item) Cost() hand.Hand {
	switch i {
	case Road:
		return hand.Hand{1, 1, 0, 0, 0}
	case Settlement:
		return hand.Hand{1, 1, 1, 1, 0}
	case City:
		return hand.Hand{0, 0, 0, 2, 3}
	case DevelopmentCard:
		return hand.Hand{0, 0, 1, 1, 1}
	default:
		return hand.Hand{}
	}
}

func (i Item) String() string {
	switch i {
	case Road:
		return "road"
	case Settlement:
		return "settlement"
	case City:
		return "city"
	case DevelopmentCard:
		return "development card"
	default:
		return "unknown item"
	}
}

// Parse converts a lowercase item token into an Item.
func Parse(text string) (Item, bool) {
	switch text {
	case "road":
		return Road, true
	case "settlement":
		return Settlement, true
	case "city":
		return City, true
	case "development card":
		return DevelopmentCard, true
	default:
		return 0, false
	}
}
