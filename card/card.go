package card

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/consts"
)

// Card is an immutable face and suit pair. Two cards are equal when both
// face and suit match, so plain == comparison works.
type Card struct {
	face Face
	suit Suit
}

func New(face, suit string) (Card, error) {
	f := Face(strings.ToUpper(face))
	if !f.Valid() {
		return Card{}, fmt.Errorf("%wface '%s' not allowed", consts.ErrorsInvalidCard, face)
	}
	s := Suit(strings.ToLower(suit))
	if !s.Valid() {
		return Card{}, fmt.Errorf("%wsuit '%s' not allowed", consts.ErrorsInvalidCard, suit)
	}
	return Card{face: f, suit: s}, nil
}

func MustNew(face, suit string) Card {
	c, err := New(face, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse reads a two character label such as "7d" or "Ts".
func Parse(label string) (Card, error) {
	if len(label) != 2 {
		return Card{}, fmt.Errorf("%wlabel '%s' not allowed", consts.ErrorsInvalidCard, label)
	}
	return New(label[:1], label[1:])
}

func (c Card) Face() Face {
	return c.face
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() int {
	return c.face.Rank()
}

func (c Card) Label() string {
	return string(c.face) + string(c.suit)
}

func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.face.Name(), c.suit.Name())
}

func (c Card) IsEight() bool {
	return c.face == Eight
}

func (c Card) IsZero() bool {
	return c == Card{}
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) String() string {
	return c.suit.Paint(c.Label())
}
