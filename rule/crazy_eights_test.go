package rule

import (
	"testing"

	"github.com/ratel-online/eights/card"
	"github.com/ratel-online/eights/event"
	"github.com/ratel-online/eights/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct {
	n int
}

func (r fixedRandom) Intn(n int) int {
	return r.n % n
}

func (r fixedRandom) Shuffle(n int, swap func(i, j int)) {}

type suitInput struct {
	suit card.Suit
}

func (i *suitInput) ChooseAction(state game.State, playableCards []card.Card) (game.Action, error) {
	return game.PlayAction(playableCards[0]), nil
}

func (i *suitInput) ChooseSuit(state game.State) (card.Suit, error) {
	return i.suit, nil
}

func labels(cards []card.Card) []string {
	result := make([]string, 0, len(cards))
	for _, c := range cards {
		result = append(result, c.Label())
	}
	return result
}

func parse(labels ...string) []card.Card {
	result := make([]card.Card, 0, len(labels))
	for _, label := range labels {
		c, err := card.Parse(label)
		if err != nil {
			panic(err)
		}
		result = append(result, c)
	}
	return result
}

func setHand(player *game.Player, labels ...string) {
	hand := player.Hand()
	for !hand.Empty() {
		hand.Pop(0)
	}
	for _, c := range parse(labels...) {
		hand.Add(c, nil)
	}
}

func newTable(t *testing.T, rules game.Rules, manual bool, n int) (*game.Game, *event.DummyListener) {
	players := []*game.Player{game.NewPlayer("p0", manual), game.NewPlayer("p1", false)}
	config := game.DefaultConfig()
	config.Rand = fixedRandom{n: n}
	g, err := game.New(players, rules, config)
	require.NoError(t, err)
	listener := event.NewDummyListener()
	g.Events().AddListener(listener)
	g.Setup()
	return g, listener
}

func TestCrazyEights_Setup(t *testing.T) {
	rules := NewCrazyEights()
	g, _ := newTable(t, rules, false, 0)

	assert.Equal(t, []string{"Jc"}, g.Discard().Labels())
	assert.Equal(t, card.Clubs, rules.CurrentSuit())
	assert.Equal(t, "c", g.Snapshot().CurrentSuit)
}

func TestCrazyEights_PlayableCards(t *testing.T) {
	rules := NewCrazyEights()
	g, _ := newTable(t, rules, false, 0)
	player := g.Players()[0]
	g.Discard().Add(card.MustNew("7", "d"), nil)
	rules.currentSuit = card.Hearts

	t.Run("rank suit or eight", func(t *testing.T) {
		setHand(player, "7c", "3h", "8s", "2d")
		assert.Equal(t, []string{"7c", "3h", "8s"}, labels(g.PlayableCards(player).Cards()))
	})

	t.Run("nothing matches", func(t *testing.T) {
		setHand(player, "2c", "Ks")
		assert.True(t, g.PlayableCards(player).Empty())
	})

	t.Run("hand is untouched", func(t *testing.T) {
		setHand(player, "7c", "3h")
		g.PlayableCards(player)
		assert.Equal(t, []string{"7c", "3h"}, player.Hand().Labels())
	})
}

func TestCrazyEights_SelectCard(t *testing.T) {
	tests := []struct {
		name     string
		hand     []string
		playable []string
		want     string
		ok       bool
	}{
		{name: "nothing playable", hand: []string{"2c"}},
		{name: "single card", hand: []string{"8s", "2c"}, playable: []string{"8s"}, want: "8s", ok: true},
		{name: "only eights", hand: []string{"8s", "8h", "2c"}, playable: []string{"8s", "8h"}, want: "8s", ok: true},
		{name: "eights kept back", hand: []string{"8s", "3h"}, playable: []string{"8s", "3h"}, want: "3h", ok: true},
		{name: "most held suit", hand: []string{"7c", "3h", "Kh", "9h"}, playable: []string{"7c", "3h"}, want: "3h", ok: true},
		{name: "tie goes to higher rank", hand: []string{"7c", "3h", "8s", "2d"}, playable: []string{"7c", "3h", "8s"}, want: "7c", ok: true},
		{name: "full tie keeps first", hand: []string{"7c", "7h"}, playable: []string{"7c", "7h"}, want: "7c", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewCrazyEights()
			g, _ := newTable(t, rules, false, 0)
			player := g.Players()[0]
			setHand(player, tt.hand...)

			selected, ok := rules.SelectCard(g, player, game.NewPileOf(false, parse(tt.playable...)...))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, selected.Label())
			}
		})
	}
}

func TestCrazyEights_SelectCrazyEightSuit(t *testing.T) {
	tests := []struct {
		name string
		hand []string
		want card.Suit
	}{
		{name: "most cards", hand: []string{"Ad", "Kd", "3h"}, want: card.Diamonds},
		{name: "eights ignored", hand: []string{"8h", "8s", "8d", "2c"}, want: card.Clubs},
		{name: "tie goes to higher top card", hand: []string{"2c", "5h", "3s"}, want: card.Hearts},
		{name: "empty hand", want: card.Clubs},
		{name: "only eights", hand: []string{"8h", "8s"}, want: card.Clubs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewCrazyEights()
			g, _ := newTable(t, rules, false, 0)
			player := g.Players()[0]
			setHand(player, tt.hand...)

			assert.Equal(t, tt.want, rules.SelectCrazyEightSuit(player))
		})
	}
}

func TestCrazyEights_PlayCard(t *testing.T) {
	t.Run("regular card sets its suit", func(t *testing.T) {
		rules := NewCrazyEights()
		g, listener := newTable(t, rules, false, 0)
		player := g.Players()[0]
		setHand(player, "Jh", "2c")

		require.True(t, g.PlayCard(player, card.MustNew("J", "h")))
		assert.Equal(t, card.Hearts, rules.CurrentSuit())
		assert.Equal(t, event.CardPlayedPayload{PlayerName: "p0", Card: card.MustNew("J", "h")}, listener.ReceivedPayloads()[1])
	})

	t.Run("automatic eight calls the best suit", func(t *testing.T) {
		rules := NewCrazyEights()
		g, listener := newTable(t, rules, false, 0)
		player := g.Players()[0]
		setHand(player, "8s", "Ad", "Kd", "3h")

		require.True(t, g.PlayCard(player, card.MustNew("8", "s")))
		assert.Equal(t, card.Diamonds, rules.CurrentSuit())
		payloads := listener.ReceivedPayloads()
		assert.Equal(t, event.SuitPickedPayload{PlayerName: "p0", Suit: card.Diamonds}, payloads[len(payloads)-1])
	})

	t.Run("manual eight asks for the suit", func(t *testing.T) {
		rules := NewCrazyEights()
		g, _ := newTable(t, rules, true, 0)
		g.SetInput(&suitInput{suit: card.Spades})
		player := g.Players()[0]
		setHand(player, "8h", "Ad", "Kd")

		require.True(t, g.PlayCard(player, card.MustNew("8", "h")))
		assert.Equal(t, card.Spades, rules.CurrentSuit())
	})

	t.Run("card not in hand", func(t *testing.T) {
		rules := NewCrazyEights()
		g, _ := newTable(t, rules, false, 0)
		player := g.Players()[0]
		setHand(player, "2c")

		assert.False(t, g.PlayCard(player, card.MustNew("8", "h")))
		assert.Equal(t, card.Clubs, rules.CurrentSuit())
	})
}

func TestCrazyEights_PlayAuto(t *testing.T) {
	t.Run("draws when nothing is playable", func(t *testing.T) {
		rules := NewCrazyEights()
		g, _ := newTable(t, rules, false, 0)
		player := g.Players()[0]
		setHand(player, "2d", "Ks")
		deckSize := g.Deck().Len()

		g.PlayTurn()
		assert.Equal(t, 3, player.Hand().Len())
		assert.Equal(t, deckSize-1, g.Deck().Len())
	})

	t.Run("plays when possible", func(t *testing.T) {
		rules := NewCrazyEights()
		g, _ := newTable(t, rules, false, 0)
		player := g.Players()[0]
		setHand(player, "2d", "4c")

		g.PlayTurn()
		assert.Equal(t, []string{"2d"}, player.Hand().Labels())
		assert.Equal(t, []string{"Jc", "4c"}, g.Discard().Labels())
	})
}

func TestCrazyEights_SeededGameKeepsEveryCard(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		players := []*game.Player{game.NewPlayer("p0", false), game.NewPlayer("p1", false), game.NewPlayer("p2", false)}
		config := game.DefaultConfig()
		config.Rand = game.NewRandomizer(seed)
		g, err := game.New(players, NewCrazyEights(), config)
		require.NoError(t, err)

		require.NoError(t, g.Run())

		total := g.Deck().Len() + g.Discard().Len()
		for _, player := range g.Players() {
			total += player.Hand().Len()
		}
		assert.Equal(t, 52, total, "seed %d", seed)
		assert.True(t, g.Completed())
		if g.Winner() == nil {
			assert.Equal(t, 5, g.Recycles(), "seed %d", seed)
		} else {
			assert.True(t, g.Winner().NoCards())
		}
	}
}
