package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/card"
	"github.com/ratel-online/eights/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome(gameName string) string {
	return Sprintfln("Welcome to %s!", gameName)
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return Sprintfln("First card is %s", c)
}

func (m MessageWriter) PlayerDrewCard(playerName string) string {
	return Sprintfln("%s draws a card", playerName)
}

func (m MessageWriter) HumanPlayerDrewCard(c card.Card) string {
	return Sprintfln("You drew %s!", c)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return Sprintfln("%s plays %s", playerName, c)
}

func (m MessageWriter) PlayerPickedSuit(playerName string, suit card.Suit) string {
	return Sprintfln("%s sets current suit to %s", playerName, suit)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PileRecycled(times, deckSize int) string {
	return Sprintfln("Discard pile recycled into the deck (%d time(s), %d card(s) in deck)", times, deckSize)
}

func (m MessageWriter) DeckExhausted(recycles int) string {
	return Sprintfln("Recycled discard pile %d times. Game over.", recycles)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s has no cards left. %s is the winner!", playerName, playerName)
}

func (m MessageWriter) CheatDetected(c card.Card) string {
	return Sprintfln("Cheat detected! Card %s cannot be played now!", c)
}

func (m MessageWriter) GameOver(gameName, winner string, turns int) string {
	if winner == "" {
		return Sprintfln("%s over after %d turn(s), no winner", gameName, turns)
	}
	return Sprintfln("%s over after %d turn(s), %s wins", gameName, turns, winner)
}

// Table renders the post-turn snapshot: one line per hand, the discard top,
// whose turn it is and any suit in force.
func (m MessageWriter) Table(table event.Table) string {
	lines := []string{"", table.GameName}
	for _, hand := range table.Hands {
		lines = append(lines, fmt.Sprintf("%s: %s", hand.PlayerName, paintLabels(hand.Cards)))
	}
	if table.DiscardTop == "" {
		lines = append(lines, "Discard pile: (empty)")
	} else {
		lines = append(lines, fmt.Sprintf("Discard pile: %s", paintLabels([]string{table.DiscardTop})))
	}
	lines = append(lines, fmt.Sprintf("Current turn: %s", table.CurrentPlayer))
	if table.CurrentSuit != "" {
		lines = append(lines, fmt.Sprintf("Current suit: %s", card.Suit(table.CurrentSuit)))
	}
	return Sprintlns(lines)
}

func paintLabels(labels []string) string {
	painted := make([]string, 0, len(labels))
	for _, label := range labels {
		if c, err := card.Parse(label); err == nil {
			painted = append(painted, c.String())
		} else {
			painted = append(painted, label)
		}
	}
	return strings.Join(painted, " ")
}

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

func Sprintlns(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
