package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/ratel-online/eights/event"
	"github.com/ratel-online/eights/msg"
)

// Console is the display listener: it narrates every game event and prints
// the table after each turn.
type Console struct {
	out   io.Writer
	delay time.Duration
	human string
}

// NewConsole writes to color.Output. human names the manual player, if any,
// so their own draws are shown face up.
func NewConsole(delay time.Duration, human string) *Console {
	return NewConsoleWriter(color.Output, delay, human)
}

func NewConsoleWriter(out io.Writer, delay time.Duration, human string) *Console {
	return &Console{out: out, delay: delay, human: human}
}

func (c *Console) print(text string) {
	fmt.Fprint(c.out, text)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

func (c *Console) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	c.print(msg.Message.FirstCardPlayed(payload.Card))
}

func (c *Console) OnCardDrawn(payload event.CardDrawnPayload) {
	if c.human != "" && payload.PlayerName == c.human {
		c.print(msg.Message.HumanPlayerDrewCard(payload.Card))
		return
	}
	c.print(msg.Message.PlayerDrewCard(payload.PlayerName))
}

func (c *Console) OnCardPlayed(payload event.CardPlayedPayload) {
	c.print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (c *Console) OnSuitPicked(payload event.SuitPickedPayload) {
	c.print(msg.Message.PlayerPickedSuit(payload.PlayerName, payload.Suit))
}

func (c *Console) OnPlayerPassed(payload event.PlayerPassedPayload) {
	c.print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (c *Console) OnPileRecycled(payload event.PileRecycledPayload) {
	c.print(msg.Message.PileRecycled(payload.Times, payload.DeckSize))
}

func (c *Console) OnDeckExhausted(payload event.DeckExhaustedPayload) {
	c.print(msg.Message.DeckExhausted(payload.Recycles))
}

func (c *Console) OnWinnerFound(payload event.WinnerFoundPayload) {
	c.print(msg.Message.WinnerFound(payload.PlayerName))
}

func (c *Console) OnTurnEnded(payload event.TurnEndedPayload) {
	c.print(msg.Message.Table(payload.Table))
}

func (c *Console) OnGameOver(payload event.GameOverPayload) {
	c.print(msg.Message.GameOver(payload.GameName, payload.Winner, payload.Turns))
}
