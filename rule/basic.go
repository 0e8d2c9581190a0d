package rule

import (
	"github.com/ratel-online/eights/card"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/game"
)

// drawOdds is the number of equally likely choices an automatic basic player
// picks from; one of them means drawing.
const drawOdds = 5

// Basic is the plain discard game: any card may be played and the first
// player to empty their hand wins.
type Basic struct{}

func NewBasic() *Basic {
	return &Basic{}
}

func (r *Basic) Name() string {
	return consts.GameTypes[consts.GameTypeBasic]
}

func (r *Basic) Setup(g *game.Game) {}

func (r *Basic) PlayableCards(g *game.Game, player *game.Player) *game.Pile {
	return game.NewPileOf(false, player.Hand().Cards()...)
}

func (r *Basic) SelectCard(g *game.Game, player *game.Player, playable *game.Pile) (card.Card, bool) {
	cards := playable.Cards()
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

func (r *Basic) PlayCard(g *game.Game, player *game.Player, c card.Card) bool {
	return g.MoveToDiscard(player, c)
}

// PlayAuto draws one time in five and plays a card otherwise.
func (r *Basic) PlayAuto(g *game.Game, player *game.Player) {
	if g.Rand().Intn(drawOdds) == 0 {
		g.DrawCard(player)
		return
	}
	selected, ok := g.SelectCard(player, g.PlayableCards(player))
	if !ok {
		g.DrawCard(player)
		return
	}
	g.PlayCard(player, selected)
}
