package game

import (
	"fmt"

	"github.com/ratel-online/eights/card"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/event"
)

type Config struct {
	CardsToDeal       int
	MaxRecycles       int
	TurnOverFirstCard bool
	Rand              Randomizer
}

func DefaultConfig() Config {
	return Config{
		CardsToDeal:       consts.DefaultCardsToDeal,
		MaxRecycles:       consts.MaxTimesRecyclingDiscardPile,
		TurnOverFirstCard: true,
	}
}

// Game runs a turn-based discard game. Turns are strictly sequential; a Game
// must not be shared between goroutines.
type Game struct {
	players *PlayerIterator
	deck    *Pile
	discard *Pile
	rules   Rules
	config  Config
	rand    Randomizer
	events  *event.Bus
	input   ManualInput

	ready     bool
	completed bool
	winner    *Player
	recycles  int
	turns     int
}

func New(players []*Player, rules Rules, config Config) (*Game, error) {
	if len(players) == 0 {
		return nil, consts.ErrorsNoPlayers
	}
	if rules == nil {
		return nil, consts.ErrorsGameTypeInvalid
	}
	if config.CardsToDeal < 1 {
		return nil, fmt.Errorf("%wcards to deal must be positive, got %d", consts.ErrorsNotEnoughCards, config.CardsToDeal)
	}
	needed := config.CardsToDeal * len(players)
	if turnsOverFirstCard(rules, config) {
		needed++
	}
	if needed > 52 {
		return nil, fmt.Errorf("%w%d players with %d cards each need %d cards", consts.ErrorsNotEnoughCards, len(players), config.CardsToDeal, needed)
	}
	if config.MaxRecycles < 0 {
		config.MaxRecycles = 0
	}
	if config.Rand == nil {
		config.Rand = NewRandomizer(0)
	}
	return &Game{
		players: newPlayerIterator(players),
		rules:   rules,
		config:  config,
		rand:    config.Rand,
		events:  event.NewBus(),
		deck:    NewPile(false),
		discard: NewPile(true),
	}, nil
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) SetInput(input ManualInput) {
	g.input = input
}

func (g *Game) Input() ManualInput {
	return g.input
}

func (g *Game) Players() []*Player {
	return g.players.Players()
}

func (g *Game) Current() *Player {
	return g.players.Current()
}

func (g *Game) Deck() *Pile {
	return g.deck
}

func (g *Game) Discard() *Pile {
	return g.discard
}

func (g *Game) DiscardTop() (card.Card, bool) {
	return g.discard.Top()
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Rand() Randomizer {
	return g.rand
}

func (g *Game) Config() Config {
	return g.config
}

func (g *Game) Completed() bool {
	return g.completed
}

// Winner is nil while the game runs and when it ended on an exhausted deck.
func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) Recycles() int {
	return g.recycles
}

func (g *Game) Turns() int {
	return g.turns
}

// Setup builds and shuffles a fresh deck, gives every player a new hand,
// deals, optionally turns over the first card and lets the rules derive
// their own state.
func (g *Game) Setup() {
	g.deck = StandardDeck()
	g.deck.Shuffle(g.rand)
	g.discard = NewPile(true)
	g.players.ForEach(func(player *Player) {
		player.resetHand()
	})
	g.Deal()
	if turnsOverFirstCard(g.rules, g.config) {
		if firstCard, ok := g.deck.Pop(0); ok {
			g.discard.Add(firstCard, nil)
			g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
		}
	}
	g.players.reset()
	g.completed = false
	g.winner = nil
	g.recycles = 0
	g.turns = 0
	g.ready = true
	g.rules.Setup(g)
}

// Deal hands out cards in rounds, one card per player per round.
func (g *Game) Deal() {
	for round := 0; round < g.config.CardsToDeal; round++ {
		g.players.ForEach(func(player *Player) {
			if c, ok := g.deck.Pop(0); ok {
				player.hand.Add(c, nil)
			}
		})
	}
}

// DrawCard moves the top of the deck into the player's hand. Emptying the
// deck triggers a discard recycle, or ends the game once the recycle limit
// has been used up.
func (g *Game) DrawCard(player *Player) (card.Card, bool) {
	c, ok := g.deck.Pop(0)
	if ok {
		player.hand.Add(c, nil)
		g.events.CardDrawn.Emit(event.CardDrawnPayload{PlayerName: player.Name(), Card: c})
	}
	if g.deck.Empty() {
		if g.recycles < g.config.MaxRecycles {
			g.RecycleDiscardPile()
			g.recycles++
			g.events.PileRecycled.Emit(event.PileRecycledPayload{Times: g.recycles, DeckSize: g.deck.Len()})
		} else {
			g.completed = true
			g.events.DeckExhausted.Emit(event.DeckExhaustedPayload{Recycles: g.recycles})
		}
	}
	return c, ok
}

// RecycleDiscardPile moves everything but the top discard back into the deck
// and shuffles it.
func (g *Game) RecycleDiscardPile() {
	top, hasTop := g.discard.Pop(g.discard.Len() - 1)
	for _, c := range g.discard.Cards() {
		g.discard.Remove(c, g.deck)
	}
	if hasTop {
		g.discard.Add(top, nil)
	}
	g.deck.Shuffle(g.rand)
}

// MoveToDiscard is the plain play: the card goes from the hand onto the
// discard pile.
func (g *Game) MoveToDiscard(player *Player, c card.Card) bool {
	played, ok := g.discard.Add(c, player.hand)
	if !ok {
		return false
	}
	g.events.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: player.Name(), Card: played})
	return true
}

func (g *Game) PlayableCards(player *Player) *Pile {
	return g.rules.PlayableCards(g, player)
}

func (g *Game) SelectCard(player *Player, playable *Pile) (card.Card, bool) {
	return g.rules.SelectCard(g, player, playable)
}

func (g *Game) PlayCard(player *Player, c card.Card) bool {
	return g.rules.PlayCard(g, player, c)
}

func (g *Game) PlayTurn() error {
	if g.completed {
		return consts.ErrorsGameCompleted
	}
	player := g.players.Current()
	g.turns++
	if player.IsManual() {
		return g.playTurnManual(player)
	}
	g.rules.PlayAuto(g, player)
	return nil
}

func (g *Game) playTurnManual(player *Player) error {
	if g.input == nil {
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: player.Name()})
		return nil
	}
	playableCards := g.PlayableCards(player).Cards()
	for attempt := 0; attempt < consts.ManualAttempts; attempt++ {
		action, err := g.input.ChooseAction(g.State(player), playableCards)
		if err != nil {
			return err
		}
		if action.Draw {
			g.DrawCard(player)
			return nil
		}
		if !contains(playableCards, action.Card) {
			if rejecter, ok := g.input.(InputRejecter); ok {
				rejecter.RejectAction(action, consts.ErrorsInputInvalid)
			}
			continue
		}
		g.PlayCard(player, action.Card)
		return nil
	}
	g.DrawCard(player)
	return nil
}

// Advance passes the turn to the next seat, wrapping around.
func (g *Game) Advance() *Player {
	return g.players.Next()
}

// UpdateStatus ends the game as soon as any player has emptied their hand.
func (g *Game) UpdateStatus() {
	for _, player := range g.players.players {
		if player.NoCards() {
			g.winner = player
			g.completed = true
			g.events.WinnerFound.Emit(event.WinnerFoundPayload{PlayerName: player.Name()})
			return
		}
	}
}

// Run plays turns until the game completes. A game that was never set up is
// set up first.
func (g *Game) Run() error {
	if g.completed {
		return consts.ErrorsGameCompleted
	}
	if !g.ready {
		g.Setup()
	}
	for !g.completed {
		if err := g.PlayTurn(); err != nil {
			return err
		}
		g.Advance()
		g.events.TurnEnded.Emit(event.TurnEndedPayload{Table: g.Snapshot()})
		g.UpdateStatus()
	}
	payload := event.GameOverPayload{GameName: g.rules.Name(), Turns: g.turns}
	if g.winner != nil {
		payload.Winner = g.winner.Name()
	}
	g.events.GameOver.Emit(payload)
	return nil
}

func (g *Game) State(player *Player) State {
	state := State{
		PlayerName:        player.Name(),
		CurrentPlayerHand: player.hand.Cards(),
		DeckSize:          g.deck.Len(),
	}
	if top, ok := g.discard.Top(); ok {
		state.LastPlayedCard = top
	}
	if keeper, ok := g.rules.(SuitKeeper); ok {
		state.CurrentSuit = keeper.CurrentSuit()
	}
	g.players.ForEach(func(p *Player) {
		state.PlayerSequence = append(state.PlayerSequence, p.Name())
		state.PlayerHandCounts = append(state.PlayerHandCounts, p.hand.Len())
	})
	return state
}

func (g *Game) Snapshot() event.Table {
	table := event.Table{
		GameName:      g.rules.Name(),
		Turn:          g.turns,
		DeckSize:      g.deck.Len(),
		CurrentPlayer: g.players.Current().Name(),
	}
	g.players.ForEach(func(p *Player) {
		table.Hands = append(table.Hands, event.HandView{PlayerName: p.Name(), Cards: p.hand.Labels()})
	})
	if top, ok := g.discard.Top(); ok {
		table.DiscardTop = top.Label()
	}
	if keeper, ok := g.rules.(SuitKeeper); ok {
		table.CurrentSuit = string(keeper.CurrentSuit())
	}
	return table
}

func turnsOverFirstCard(rules Rules, config Config) bool {
	if turner, ok := rules.(FirstCardTurner); ok && turner.TurnOverFirstCard() {
		return true
	}
	return config.TurnOverFirstCard
}
