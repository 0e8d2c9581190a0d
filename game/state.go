package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/card"
)

// State is what a manual player gets to see when asked for a move.
type State struct {
	PlayerName        string
	LastPlayedCard    card.Card
	CurrentSuit       card.Suit
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
	DeckSize          int
}

func (s State) String() string {
	var lines []string
	if s.LastPlayedCard.IsZero() {
		lines = append(lines, "Last played card: none")
	} else {
		lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
	}
	if s.CurrentSuit != "" {
		lines = append(lines, fmt.Sprintf("Current suit: %s", s.CurrentSuit))
	}

	var playerStatuses []string
	for i, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[i])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Cards in deck: %d", s.DeckSize))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
