package game

import "github.com/ratel-online/eights/card"

// Rules is the capability set a game variant plugs into the engine. The
// engine only ever calls a variant through this interface, so a variant
// that reuses another's methods still gets its own overrides dispatched.
type Rules interface {
	Name() string
	// Setup initializes variant state once the engine has dealt and seeded
	// the discard pile.
	Setup(g *Game)
	PlayableCards(g *Game, player *Player) *Pile
	SelectCard(g *Game, player *Player, playable *Pile) (card.Card, bool)
	PlayCard(g *Game, player *Player, c card.Card) bool
	PlayAuto(g *Game, player *Player)
}

// SuitKeeper is implemented by variants that track a suit in force
// separately from the discard top.
type SuitKeeper interface {
	CurrentSuit() card.Suit
}

// FirstCardTurner is implemented by variants that need the discard pile
// seeded regardless of configuration.
type FirstCardTurner interface {
	TurnOverFirstCard() bool
}
