package game_test

import (
	"testing"

	"github.com/ratel-online/eights/card"
	"github.com/ratel-online/eights/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(labels ...string) []card.Card {
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

func pileOf(labels ...string) *game.Pile {
	return game.NewPileOf(false, cards(labels...)...)
}

func TestPile_Top(t *testing.T) {
	_, ok := game.NewPile(true).Top()
	assert.False(t, ok)

	top, ok := pileOf("7c", "3h").Top()
	require.True(t, ok)
	assert.Equal(t, "3h", top.Label())
}

func TestPile_Contains(t *testing.T) {
	pile := pileOf("7c", "3h")

	found, ok := pile.Contains(card.MustNew("3", "h"))
	assert.True(t, ok)
	assert.Equal(t, "3h", found.Label())

	_, ok = pile.Contains(card.MustNew("3", "s"))
	assert.False(t, ok)
}

func TestPile_Add(t *testing.T) {
	t.Run("without source", func(t *testing.T) {
		pile := game.NewPile(false)
		_, ok := pile.Add(card.MustNew("A", "s"), nil)
		assert.True(t, ok)
		assert.Equal(t, []string{"As"}, pile.Labels())
	})

	t.Run("moves from source", func(t *testing.T) {
		hand := pileOf("7c", "3h", "8s")
		discard := pileOf("7d")

		moved, ok := discard.Add(card.MustNew("3", "h"), hand)
		assert.True(t, ok)
		assert.Equal(t, "3h", moved.Label())
		assert.Equal(t, []string{"7c", "8s"}, hand.Labels())
		assert.Equal(t, []string{"7d", "3h"}, discard.Labels())
	})

	t.Run("missing in source changes nothing", func(t *testing.T) {
		hand := pileOf("7c")
		discard := pileOf("7d")

		_, ok := discard.Add(card.MustNew("K", "h"), hand)
		assert.False(t, ok)
		assert.Equal(t, []string{"7c"}, hand.Labels())
		assert.Equal(t, []string{"7d"}, discard.Labels())
	})
}

func TestPile_Remove(t *testing.T) {
	pile := pileOf("7c", "3h", "8s")
	target := game.NewPile(false)

	removed, ok := pile.Remove(card.MustNew("3", "h"), target)
	assert.True(t, ok)
	assert.Equal(t, "3h", removed.Label())
	assert.Equal(t, []string{"7c", "8s"}, pile.Labels())
	assert.Equal(t, []string{"3h"}, target.Labels())

	_, ok = pile.Remove(card.MustNew("3", "h"), nil)
	assert.False(t, ok)
}

func TestPile_Pop(t *testing.T) {
	tests := []struct {
		name     string
		position int
		want     string
		ok       bool
		left     []string
	}{
		{name: "first", position: 0, want: "7c", ok: true, left: []string{"3h", "8s"}},
		{name: "last", position: 2, want: "8s", ok: true, left: []string{"7c", "3h"}},
		{name: "out of range", position: 3, left: []string{"7c", "3h", "8s"}},
		{name: "negative", position: -1, left: []string{"7c", "3h", "8s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pile := pileOf("7c", "3h", "8s")
			popped, ok := pile.Pop(tt.position)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, popped.Label())
			}
			assert.Equal(t, tt.left, pile.Labels())
		})
	}
}

func TestPile_Cards_ReturnsCopy(t *testing.T) {
	pile := pileOf("7c", "3h")
	snapshot := pile.Cards()
	snapshot[0] = card.MustNew("K", "s")
	assert.Equal(t, []string{"7c", "3h"}, pile.Labels())
}

func TestPile_ExtractByFaces(t *testing.T) {
	pile := pileOf("8c", "3h", "8d", "Ks", "3c")

	eights, others := pile.ExtractByFaces(card.Eight)
	assert.Equal(t, []string{"8c", "8d"}, eights.Labels())
	assert.Equal(t, []string{"3h", "Ks", "3c"}, others.Labels())

	matched, rest := pile.ExtractByFaces(card.Eight, card.Three, card.Eight)
	assert.Equal(t, []string{"8c", "3h", "8d", "3c"}, matched.Labels())
	assert.Equal(t, []string{"Ks"}, rest.Labels())

	assert.Equal(t, 5, pile.Len(), "source pile is untouched")
}

func TestPile_CountBySuit(t *testing.T) {
	pile := pileOf("Ad", "Kd", "3h")

	assert.Equal(t, map[card.Suit]int{
		card.Clubs: 0, card.Diamonds: 2, card.Hearts: 1, card.Spades: 0,
	}, pile.CountBySuit())
	assert.Equal(t, map[card.Suit]int{card.Hearts: 1, card.Spades: 0}, pile.CountBySuit(card.Hearts, card.Spades))
}

func TestPile_HighestRankBySuit(t *testing.T) {
	pile := pileOf("Ad", "Kd", "3h")

	assert.Equal(t, map[card.Suit]int{
		card.Clubs: 0, card.Diamonds: 13, card.Hearts: 3, card.Spades: 0,
	}, pile.HighestRankBySuit())
}

func TestPile_Display(t *testing.T) {
	assert.Equal(t, "7c 3h Td", pileOf("7c", "3h", "Td").Display())
	assert.Equal(t, "", game.NewPile(true).Display())
}
