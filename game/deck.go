package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/eights/card"
)

// Randomizer is the source used for shuffling and for automatic play
// choices. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandomizer returns a seeded source; seed 0 seeds from the clock.
func NewRandomizer(seed int64) Randomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// StandardDeck builds the 52 card deck unshuffled: suits in enumeration order,
// faces Ace to King within each suit.
func StandardDeck() *Pile {
	deck := NewPile(false)
	for _, suit := range card.Suits() {
		for _, face := range card.Faces() {
			deck.Add(card.MustNew(string(face), string(suit)), nil)
		}
	}
	return deck
}
