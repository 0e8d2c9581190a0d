package rule

import (
	"github.com/ratel-online/eights/card"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/event"
	"github.com/ratel-online/eights/game"
)

// CrazyEights only accepts a card matching the discard top's rank or the
// suit in force. Eights are always playable and let the player call the
// next suit.
type CrazyEights struct {
	Basic
	currentSuit card.Suit
}

func NewCrazyEights() *CrazyEights {
	return &CrazyEights{}
}

func (r *CrazyEights) Name() string {
	return consts.GameTypes[consts.GameTypeCrazyEights]
}

func (r *CrazyEights) TurnOverFirstCard() bool {
	return true
}

func (r *CrazyEights) CurrentSuit() card.Suit {
	return r.currentSuit
}

func (r *CrazyEights) Setup(g *game.Game) {
	r.currentSuit = ""
	if top, ok := g.DiscardTop(); ok {
		r.currentSuit = top.Suit()
	}
}

func (r *CrazyEights) PlayableCards(g *game.Game, player *game.Player) *game.Pile {
	currentRank := 0
	if top, ok := g.DiscardTop(); ok {
		currentRank = top.Rank()
	}
	playable := game.NewPile(false)
	for _, c := range player.Hand().Cards() {
		if c.Rank() == currentRank || c.Suit() == r.currentSuit || c.IsEight() {
			playable.Add(c, nil)
		}
	}
	return playable
}

func (r *CrazyEights) PlayCard(g *game.Game, player *game.Player, c card.Card) bool {
	if !g.MoveToDiscard(player, c) {
		return false
	}
	if c.IsEight() {
		r.currentSuit = r.callSuit(g, player)
		g.Events().SuitPicked.Emit(event.SuitPickedPayload{PlayerName: player.Name(), Suit: r.currentSuit})
		return true
	}
	if top, ok := g.DiscardTop(); ok {
		r.currentSuit = top.Suit()
	}
	return true
}

func (r *CrazyEights) callSuit(g *game.Game, player *game.Player) card.Suit {
	if player.IsManual() {
		if chooser, ok := g.Input().(game.SuitChooser); ok {
			if suit, err := chooser.ChooseSuit(g.State(player)); err == nil && suit.Valid() {
				return suit
			}
		}
	}
	return r.SelectCrazyEightSuit(player)
}

// PlayAuto draws only when nothing in hand can be played.
func (r *CrazyEights) PlayAuto(g *game.Game, player *game.Player) {
	playable := g.PlayableCards(player)
	if playable.Empty() {
		g.DrawCard(player)
		return
	}
	if selected, ok := g.SelectCard(player, playable); ok {
		g.PlayCard(player, selected)
	}
}

// SelectCard keeps eights back unless nothing else is playable. Among the
// other playable cards it prefers the suit the player holds most of, then
// the higher rank; earlier cards win remaining ties.
func (r *CrazyEights) SelectCard(g *game.Game, player *game.Player, playable *game.Pile) (card.Card, bool) {
	cards := playable.Cards()
	switch len(cards) {
	case 0:
		return card.Card{}, false
	case 1:
		return cards[0], true
	}

	eights, others := playable.ExtractByFaces(card.Eight)
	if others.Empty() {
		return eights.Cards()[0], true
	}

	suits := player.Hand().CountBySuit()
	candidates := others.Cards()
	selected := candidates[0]
	for _, c := range candidates[1:] {
		if suits[c.Suit()] > suits[selected.Suit()] ||
			(suits[c.Suit()] == suits[selected.Suit()] && c.Rank() > selected.Rank()) {
			selected = c
		}
	}
	return selected, true
}

// SelectCrazyEightSuit calls the suit the player holds most of, ignoring
// eights; ties go to the suit with the higher top card, then to the earlier
// suit in clubs, diamonds, hearts, spades order.
func (r *CrazyEights) SelectCrazyEightSuit(player *game.Player) card.Suit {
	_, others := player.Hand().ExtractByFaces(card.Eight)
	counts := others.CountBySuit()
	ranks := others.HighestRankBySuit()

	suits := card.Suits()
	selected := suits[0]
	for _, s := range suits[1:] {
		if counts[s] > counts[selected] ||
			(counts[s] == counts[selected] && ranks[s] > ranks[selected]) {
			selected = s
		}
	}
	return selected
}
