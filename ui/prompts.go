package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/eights/card"
	"github.com/ratel-online/eights/game"
	"github.com/ratel-online/eights/msg"
)

const drawKey = 'D'

// Prompter asks a human at a terminal for their moves. It satisfies
// game.ManualInput, game.InputRejecter and game.SuitChooser.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) println(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *Prompter) printfln(format string, args ...interface{}) {
	p.println(fmt.Sprintf(format, args...))
}

// PromptString shows message and returns the next non-empty line. It only
// fails when the input is closed.
func (p *Prompter) PromptString(message string) (string, error) {
	for {
		p.println(message)
		line, err := p.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if input != "" {
			return input, nil
		}
		if err != nil {
			return "", err
		}
		p.println("Invalid text input")
	}
}

func (p *Prompter) promptUppercaseString(message string) (string, error) {
	input, err := p.PromptString(message)
	return strings.ToUpper(input), err
}

func (p *Prompter) ChooseAction(state game.State, playableCards []card.Card) (game.Action, error) {
	fmt.Fprint(p.out, msg.Message.HumanPlayerTurnStarted(state.PlayerName))
	p.println(state.String())

	sequence := runeSequence{}
	labels := make([]string, 0, len(playableCards))
	cardOptions := make(map[string]card.Card, len(playableCards))
	for _, c := range playableCards {
		label := string(sequence.next())
		labels = append(labels, label)
		cardOptions[label] = c
	}

	lines := []string{"Select a card to play:"}
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%s (enter %s)", cardOptions[label], label))
	}
	lines = append(lines, fmt.Sprintf("Draw a card (enter %c)", drawKey))
	message := strings.Join(lines, "\n")

	for {
		selected, err := p.promptUppercaseString(message)
		if err != nil {
			return game.Action{}, err
		}
		if selected == string(drawKey) {
			return game.DrawAction(), nil
		}
		if c, found := cardOptions[selected]; found {
			return game.PlayAction(c), nil
		}
		if c, err := card.Parse(selected); err == nil {
			return game.PlayAction(c), nil
		}
		p.printfln("No card assigned to '%s'", selected)
	}
}

func (p *Prompter) RejectAction(action game.Action, err error) {
	fmt.Fprint(p.out, msg.Message.CheatDetected(action.Card))
}

func (p *Prompter) ChooseSuit(state game.State) (card.Suit, error) {
	message := fmt.Sprintf(
		"Select a suit: '%s' (%s), '%s' (%s), '%s' (%s) or '%s' (%s)?",
		string(card.Clubs), card.Clubs,
		string(card.Diamonds), card.Diamonds,
		string(card.Hearts), card.Hearts,
		string(card.Spades), card.Spades,
	)
	for {
		input, err := p.PromptString(message)
		if err != nil {
			return "", err
		}
		suit := Suit(input)
		if suit.Valid() {
			return suit, nil
		}
		p.printfln("Unknown suit '%s'", input)
	}
}

// Suit accepts a suit letter or name in any case.
func Suit(input string) card.Suit {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, suit := range card.Suits() {
		if input == string(suit) || input == suit.Name() {
			return suit
		}
	}
	return card.Suit(input)
}
