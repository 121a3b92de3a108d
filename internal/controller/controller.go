// Package controller dispatches parsed game events onto the belief-state
// engine, one at a time and strictly in log order.
package controller

import (
	"github.com/chariotsofiron/colonizer/internal/cards"
	"github.com/chariotsofiron/colonizer/internal/catanlog"
	"github.com/chariotsofiron/colonizer/internal/hand"
	"github.com/chariotsofiron/colonizer/internal/resource"
)

// Controller is a thin, stateless-apart-from-the-tracker dispatcher:
// replaying the same event stream on a fresh Controller is deterministic.
type Controller struct {
	tracker *cards.CardTracker
}

// New returns a Controller backed by a fresh CardTracker.
func New() *Controller {
	return &Controller{tracker: cards.NewCardTracker()}
}

// Table returns the current public (sure, expected, rob_chance) summary.
func (c *Controller) Table() [cards.MaxPlayers][resource.NumResources]cards.Cell {
	return c.tracker.Table()
}

// Len exposes the belief distribution's size, mainly for diagnostics.
func (c *Controller) Len() int {
	return c.tracker.Len()
}

// Process applies one Event's effect to the tracker.
func (c *Controller) Process(ev catanlog.Event) {
	switch ev.Kind {
	case catanlog.Acquire:
		c.tracker.Add(int(ev.Player), ev.Hand)
	case catanlog.Discard:
		c.tracker.Remove(int(ev.Player), ev.Hand)
	case catanlog.Purchase:
		c.tracker.Remove(int(ev.Player), ev.Item.Cost())
	case catanlog.Steal:
		c.tracker.Rob(ev.Robber, ev.Victim)
	case catanlog.StealKnown:
		card := hand.Unit(ev.Resource)
		c.tracker.Remove(ev.Victim, card)
		c.tracker.Add(ev.Robber, card)
	case catanlog.OfferTrade:
		c.tracker.KnowHas(int(ev.Player), ev.Offer)
	case catanlog.AcceptTrade:
		c.tracker.Add(int(ev.Player), ev.Request)
		c.tracker.Remove(int(ev.Counterparty), ev.Request)
		c.tracker.Add(int(ev.Counterparty), ev.Offer)
		c.tracker.Remove(int(ev.Player), ev.Offer)
	case catanlog.YearOfPlenty:
		c.tracker.Add(int(ev.Player), ev.Hand)
	case catanlog.BankTrade:
		c.tracker.Remove(int(ev.Player), ev.Offer)
		c.tracker.Add(int(ev.Player), ev.Request)
	case catanlog.Monopoly:
		c.tracker.Monopoly(int(ev.Player), ev.Resource, ev.Count)
	case catanlog.Roll, catanlog.MoveRobber:
		// Observed but do not affect card beliefs.
	}
}
