package catanlog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chariotsofiron/colonizer/internal/cards"
	"github.com/chariotsofiron/colonizer/internal/hand"
	"github.com/chariotsofiron/colonizer/internal/item"
	"github.com/chariotsofiron/colonizer/internal/resource"
)

// SeatOverflowError reports that a new player name would need a seat beyond
// cards.MaxPlayers: more distinct names appeared in the log than the game
// allows. Treated as a fatal programming error, not a recoverable parse
// failure.
type SeatOverflowError struct {
	Name string
}

func (e *SeatOverflowError) Error() string {
	return fmt.Sprintf("catanlog: seat assignment for %q would exceed MaxPlayers=%d", e.Name, cards.MaxPlayers)
}

// Color is an RGB display color assigned to a seat.
type Color struct{ R, G, B uint8 }

// Roster is one entry of Parser.Players: a display name, its seat, and its
// display color.
type Roster struct {
	Name  string
	Seat  int
	Color Color
}

// Parser maintains the name-to-seat mapping and converts chat lines into
// Events. Zero value is not usable; construct with NewParser or
// NewParserWithUsername.
type Parser struct {
	players map[string]int
	colors  [cards.MaxPlayers]Color
}

// NewParser returns a Parser with no players registered yet. The first name
// encountered is assigned seat 0 and so on in order of appearance.
func NewParser() *Parser {
	return &Parser{players: make(map[string]int, cards.MaxPlayers)}
}

// NewParserWithUsername returns a Parser that pre-registers username (and
// the literal tokens "you"/"You", which the game client substitutes in
// first-person messages) as seat 0, the local player.
func NewParserWithUsername(username string) *Parser {
	p := NewParser()
	p.players["you"] = 0
	p.players["You"] = 0
	p.players[username] = 0
	return p
}

// Players returns the current name/seat/color roster. Order is unspecified.
func (p *Parser) Players() []Roster {
	out := make([]Roster, 0, len(p.players))
	for name, seat := range p.players {
		out = append(out, Roster{Name: name, Seat: seat, Color: p.colors[seat]})
	}
	return out
}

// SetColor records the display color colonist.io assigned to a seat.
func (p *Parser) SetColor(seat int, c Color) {
	p.colors[seat] = c
}

// playerIndex returns the seat for name, assigning the next dense seat
// index (max(existing)+1, or 0 if none) on first sight. Panics with
// *SeatOverflowError if that would exceed cards.MaxPlayers.
func (p *Parser) playerIndex(name string) int {
	if seat, ok := p.players[name]; ok {
		return seat
	}
	next := 0
	for _, seat := range p.players {
		if seat+1 > next {
			next = seat + 1
		}
	}
	if next >= cards.MaxPlayers {
		panic(&SeatOverflowError{Name: name})
	}
	p.players[name] = next
	return next
}

// ParseText feeds text one line at a time, in order, returning every Event
// produced. Lines that match no pattern, or whose fields fail to re-parse,
// are silently skipped; this is a recoverable parse failure, not a fatal
// one.
func (p *Parser) ParseText(text string) []Event {
	var events []Event
	for _, line := range strings.Split(text, "\n") {
		if ev, ok := p.ParseLine(line); ok {
			events = append(events, ev)
		}
	}
	return events
}

// ParseLine attempts to parse a single chat line against the fixed pattern
// grammar, trying each pattern in turn and returning on the first match.
// Returns ok=false if no pattern matches, or if a matched pattern's inner
// fields fail to re-parse.
func (p *Parser) ParseLine(line string) (Event, bool) {
	// The game client interleaves colons into messages inconsistently;
	// strip them before matching.
	text := strings.ReplaceAll(line, ":", "")

	if m := reAcquire.FindStringSubmatch(text); m != nil {
		return Event{Kind: Acquire, Player: Player(p.playerIndex(m[1])), Hand: hand.Parse(m[2])}, true
	}
	if m := reDiscard.FindStringSubmatch(text); m != nil {
		return Event{Kind: Discard, Player: Player(p.playerIndex(m[1])), Hand: hand.Parse(m[2])}, true
	}
	if m := rePurchase.FindStringSubmatch(text); m != nil {
		it, ok := item.Parse(m[2])
		if !ok {
			return Event{}, false
		}
		return Event{Kind: Purchase, Player: Player(p.playerIndex(m[1])), Item: it}, true
	}
	if m := reSteal.FindStringSubmatch(text); m != nil {
		robber := p.playerIndex(m[1])
		victim := p.playerIndex(m[3])
		if r, ok := resource.Parse(strings.TrimSpace(m[2])); ok {
			return Event{Kind: StealKnown, Robber: robber, Victim: victim, Resource: r}, true
		}
		return Event{Kind: Steal, Robber: robber, Victim: victim}, true
	}
	if m := reTradeOffer.FindStringSubmatch(text); m != nil {
		return Event{
			Kind:    OfferTrade,
			Player:  Player(p.playerIndex(m[1])),
			Offer:   hand.Parse(m[4]),
			Request: hand.Parse(m[5]),
		}, true
	}
	if m := reTrade.FindStringSubmatch(text); m != nil {
		return Event{
			Kind:         AcceptTrade,
			Player:       Player(p.playerIndex(m[1])),
			Offer:        hand.Parse(m[2]),
			Request:      hand.Parse(m[3]),
			Counterparty: Player(p.playerIndex(m[4])),
		}, true
	}
	if m := reYearOfPlenty.FindStringSubmatch(text); m != nil {
		return Event{Kind: YearOfPlenty, Player: Player(p.playerIndex(m[1])), Hand: hand.Parse(m[2])}, true
	}
	if m := reBankTrade.FindStringSubmatch(text); m != nil {
		return Event{
			Kind:    BankTrade,
			Player:  Player(p.playerIndex(m[1])),
			Offer:   hand.Parse(m[2]),
			Request: hand.Parse(m[3]),
		}, true
	}
	if m := reMonopoly.FindStringSubmatch(text); m != nil {
		count, err := strconv.ParseUint(m[2], 10, 8)
		if err != nil {
			return Event{}, false
		}
		r, ok := resource.Parse(strings.TrimSpace(m[3]))
		if !ok {
			return Event{}, false
		}
		return Event{Kind: Monopoly, Player: Player(p.playerIndex(m[1])), Count: uint8(count), Resource: r}, true
	}
	if m := reDiceRoll.FindStringSubmatch(text); m != nil {
		d1, err1 := strconv.Atoi(m[2])
		d2, err2 := strconv.Atoi(m[3])
		if err1 != nil || err2 != nil {
			return Event{}, false
		}
		return Event{Kind: Roll, Player: Player(p.playerIndex(m[1])), Total: d1 + d2}, true
	}

	return Event{}, false
}
