package catanlog

import "regexp"

// Regex fragments, composed below. Eagerly compiled once at package init
// rather than per line.
const (
	// namePattern captures the real username, discarding a leading
	// "Guest"/"bot"/"User" prefix the game client injects.
	namePattern = `(?:Guest|bot|User)?(\w+(?:#\d+)?)`
	// cardsPattern captures one or more resource tokens (or the literal
	// token "card", used when the client withholds the resource kind),
	// concatenated by the HTML renderer with optional single spaces.
	cardsPattern = `((?:(?:lumber|brick|wool|grain|ore|card) ?)+)`
	itemPattern  = `(road|settlement|city|development card)`
	dicePattern  = `(?:dice_([1-6]))`
)

var (
	reAcquire      = regexp.MustCompile(namePattern + ` (?:got|received starting resources) ` + cardsPattern)
	reDiscard      = regexp.MustCompile(namePattern + ` discarded ` + cardsPattern)
	rePurchase     = regexp.MustCompile(namePattern + ` (?:built a|bought) ` + itemPattern)
	reSteal        = regexp.MustCompile(namePattern + ` stole ` + cardsPattern + ` from? ` + namePattern)
	reTradeOffer   = regexp.MustCompile(namePattern + ` wants to give( ` + namePattern + `)? ` + cardsPattern + ` for ` + cardsPattern)
	reTrade        = regexp.MustCompile(namePattern + ` traded ` + cardsPattern + ` for ` + cardsPattern + ` with ` + namePattern)
	reYearOfPlenty = regexp.MustCompile(namePattern + ` took from bank ` + cardsPattern)
	reBankTrade    = regexp.MustCompile(namePattern + ` gave bank ` + cardsPattern + ` and took ` + cardsPattern)
	reMonopoly     = regexp.MustCompile(namePattern + ` stole (\d+) ` + cardsPattern)
	reDiceRoll     = regexp.MustCompile(namePattern + ` rolled ` + dicePattern + ` ` + dicePattern)
)

// Group indices below are 1-based, matching regexp.FindStringSubmatch.
//
//	reAcquire:      1=player               2=cards
//	reDiscard:      1=player               2=cards
//	rePurchase:     1=player               2=item
//	reSteal:        1=robber  2=cards      3=victim
//	reTradeOffer:   1=player  2=(" "+name) 3=counterparty (captured, unused)  4=offer  5=request
//	reTrade:        1=player  2=offer      3=request       4=counterparty
//	reYearOfPlenty: 1=player  2=cards
//	reBankTrade:    1=player  2=offer      3=request
//	reMonopoly:     1=player  2=count      3=cards
//	reDiceRoll:     1=player  2=die1       3=die2
