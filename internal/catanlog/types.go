// Package catanlog parses colonist.io chat-log lines into typed game
// events; package controller applies them to the belief-state engine.
package catanlog

import (
	"github.com/chariotsofiron/colonizer/internal/hand"
	"github.com/chariotsofiron/colonizer/internal/item"
	"github.com/chariotsofiron/colonizer/internal/resource"
)

// Player is a dense seat index, 0..cards.MaxPlayers-1.
type Player int

// Kind identifies which case of Event is populated.
type Kind int

const (
	Acquire Kind = iota
	Discard
	Purchase
	Steal
	StealKnown
	OfferTrade
	AcceptTrade
	YearOfPlenty
	BankTrade
	Monopoly
	Roll
	MoveRobber
)

// Event is a tagged union of every game-log event the tracker understands.
// Go has no sum types, so unlike the Rust original's enum, each Kind uses
// whichever subset of fields it needs; see the field comments for which
// Kind populates which fields.
type Event struct {
	Kind Kind

	Player Player    // Acquire, Discard, Purchase, OfferTrade, AcceptTrade, YearOfPlenty, BankTrade, Monopoly, Roll, MoveRobber
	Hand   hand.Hand // Acquire, Discard, YearOfPlenty
	Item   item.Item // Purchase

	Robber int // Steal, StealKnown
	Victim int // Steal, StealKnown

	Resource resource.Resource // StealKnown, Monopoly

	Counterparty Player    // AcceptTrade
	Offer        hand.Hand // OfferTrade, AcceptTrade, BankTrade
	Request      hand.Hand // OfferTrade, AcceptTrade, BankTrade

	Count uint8 // Monopoly

	Total int // Roll: sum of both dice
	Tile  int // MoveRobber: the tile index the robber landed on (never populated by the parser; no pattern produces it)
}
