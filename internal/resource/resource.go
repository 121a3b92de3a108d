// Package resource defines the five Catan resource kinds and their fixed
// ordering, used throughout the tracker as an array index.
package resource

import "fmt"

// Resource is one of the five Catan resource kinds.
type Resource int

// NumResources is the number of distinct resource kinds.
const NumResources = 5

const (
	Lumber Resource = iota
	Brick
	Wool
	Grain
	Ore
)

// All holds every Resource in index order.
var All = [NumResources]Resource{Lumber, Brick, Wool, Grain, Ore}

func (r Resource) String() string {
	switch r {
	case Lumber:
		return "lumber"
	case Brick:
		return "brick"
	case Wool:
		return "wool"
	case Grain:
		return "grain"
	case Ore:
		return "ore"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

// Parse converts a lowercase resource token into a Resource.
func Parse(text string) (Resource, bool) {
	switch text {
	case "lumber":
		return Lumber, true
	case "brick":
		return Brick, true
	case "wool":
		return Wool, true
	case "grain":
		return Grain, true
	case "ore":
		return Ore, true
	default:
		return 0, false
	}
}
