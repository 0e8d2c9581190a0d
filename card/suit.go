package card

import (
	"fmt"

	"github.com/fatih/color"
)

type Suit string

const (
	Clubs    Suit = "c"
	Diamonds Suit = "d"
	Hearts   Suit = "h"
	Spades   Suit = "s"
)

type suitInfo struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var suits = map[Suit]suitInfo{
	Clubs:    {name: "clubs", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
	Diamonds: {name: "diamonds", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Hearts:   {name: "hearts", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Spades:   {name: "spades", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
}

var suitOrder = []Suit{Clubs, Diamonds, Hearts, Spades}

// Suits returns every suit in enumeration order: clubs, diamonds, hearts, spades.
func Suits() []Suit {
	out := make([]Suit, len(suitOrder))
	copy(out, suitOrder)
	return out
}

func (s Suit) Valid() bool {
	_, ok := suits[s]
	return ok
}

func (s Suit) Name() string {
	return suits[s].name
}

func (s Suit) Paint(text string) string {
	info, ok := suits[s]
	if !ok {
		return text
	}
	return info.colorFunction("%s", text)
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%q)", string(s))
	}
	return s.Paint(s.Name())
}
