package game

import "github.com/ratel-online/eights/card"

type Action struct {
	Draw bool
	Card card.Card
}

func DrawAction() Action {
	return Action{Draw: true}
}

func PlayAction(c card.Card) Action {
	return Action{Card: c}
}

// ManualInput chooses moves for manual players.
type ManualInput interface {
	ChooseAction(state State, playableCards []card.Card) (Action, error)
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, c := range cards {
		if c.Equal(searchedCard) {
			return true
		}
	}
	return false
}

// InputRejecter is told when a chosen action was not allowed, before the
// player is asked again.
type InputRejecter interface {
	RejectAction(action Action, err error)
}

// SuitChooser lets a manual player call the suit after playing a wild card.
type SuitChooser interface {
	ChooseSuit(state State) (card.Suit, error)
}
