package game

import (
	"strings"

	"github.com/ratel-online/eights/card"
)

// Pile is an ordered collection of cards. Index 0 is the draw end; the last
// card is the visible top of a discard pile. Cards only leave a pile through
// Remove, Pop or another pile's Add with this pile as source, so a card is
// never held by two piles at once.
type Pile struct {
	cards   []card.Card
	visible bool
}

func NewPile(visible bool) *Pile {
	return &Pile{cards: make([]card.Card, 0, 52), visible: visible}
}

func (p *Pile) Visible() bool {
	return p.visible
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// Top returns the last card of the pile.
func (p *Pile) Top() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

func (p *Pile) Contains(c card.Card) (card.Card, bool) {
	if i := p.indexOf(c); i >= 0 {
		return p.cards[i], true
	}
	return card.Card{}, false
}

// Add appends c. When source is given the card must be present there and is
// moved out of it first; if it is not, neither pile changes.
func (p *Pile) Add(c card.Card, source *Pile) (card.Card, bool) {
	if source != nil {
		found, ok := source.Remove(c, nil)
		if !ok {
			return card.Card{}, false
		}
		c = found
	}
	p.cards = append(p.cards, c)
	return c, true
}

// Remove takes the first card equal to c out of the pile and, when target is
// given, appends it there.
func (p *Pile) Remove(c card.Card, target *Pile) (card.Card, bool) {
	i := p.indexOf(c)
	if i < 0 {
		return card.Card{}, false
	}
	found := p.cards[i]
	p.cards = append(p.cards[:i], p.cards[i+1:]...)
	if target != nil {
		target.cards = append(target.cards, found)
	}
	return found, true
}

func (p *Pile) Pop(position int) (card.Card, bool) {
	if position < 0 || len(p.cards) < position+1 {
		return card.Card{}, false
	}
	c := p.cards[position]
	p.cards = append(p.cards[:position], p.cards[position+1:]...)
	return c, true
}

func (p *Pile) Shuffle(r Randomizer) {
	r.Shuffle(len(p.cards), func(i, j int) { p.cards[i], p.cards[j] = p.cards[j], p.cards[i] })
}

// ExtractByFaces partitions the pile into cards whose face is one of faces
// and the rest. The pile itself is left untouched.
func (p *Pile) ExtractByFaces(faces ...card.Face) (*Pile, *Pile) {
	wanted := make(map[card.Face]bool, len(faces))
	for _, face := range faces {
		wanted[face] = true
	}
	match, remainder := NewPile(p.visible), NewPile(p.visible)
	for _, c := range p.cards {
		if wanted[c.Face()] {
			match.cards = append(match.cards, c)
		} else {
			remainder.cards = append(remainder.cards, c)
		}
	}
	return match, remainder
}

// CountBySuit counts cards per suit. Every requested suit is present in the
// result, defaulting to all four.
func (p *Pile) CountBySuit(suits ...card.Suit) map[card.Suit]int {
	counts := suitMap(suits)
	for _, c := range p.cards {
		if _, ok := counts[c.Suit()]; ok {
			counts[c.Suit()]++
		}
	}
	return counts
}

// HighestRankBySuit maps each suit to the best rank held in it, 0 if none.
func (p *Pile) HighestRankBySuit(suits ...card.Suit) map[card.Suit]int {
	ranks := suitMap(suits)
	for _, c := range p.cards {
		if best, ok := ranks[c.Suit()]; ok && c.Rank() > best {
			ranks[c.Suit()] = c.Rank()
		}
	}
	return ranks
}

func (p *Pile) Display() string {
	return strings.Join(p.Labels(), " ")
}

func (p *Pile) Labels() []string {
	labels := make([]string, 0, len(p.cards))
	for _, c := range p.cards {
		labels = append(labels, c.Label())
	}
	return labels
}

func (p *Pile) String() string {
	return p.Display()
}

func (p *Pile) indexOf(c card.Card) int {
	for i, candidate := range p.cards {
		if candidate.Equal(c) {
			return i
		}
	}
	return -1
}

func suitMap(suits []card.Suit) map[card.Suit]int {
	if len(suits) == 0 {
		suits = card.Suits()
	}
	m := make(map[card.Suit]int, len(suits))
	for _, s := range suits {
		m[s] = 0
	}
	return m
}

// NewPileOf builds a pile holding cards in the given order.
func NewPileOf(visible bool, cards ...card.Card) *Pile {
	p := NewPile(visible)
	p.cards = append(p.cards, cards...)
	return p
}
