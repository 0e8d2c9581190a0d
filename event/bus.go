package event

// Bus groups the emitters of a single game so that listeners of one game
// never observe another.
type Bus struct {
	FirstCardPlayed *firstCardPlayedEmitter
	CardDrawn       *cardDrawnEmitter
	CardPlayed      *cardPlayedEmitter
	SuitPicked      *suitPickedEmitter
	PlayerPassed    *playerPassedEmitter
	PileRecycled    *pileRecycledEmitter
	DeckExhausted   *deckExhaustedEmitter
	WinnerFound     *winnerFoundEmitter
	TurnEnded       *turnEndedEmitter
	GameOver        *gameOverEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &firstCardPlayedEmitter{},
		CardDrawn:       &cardDrawnEmitter{},
		CardPlayed:      &cardPlayedEmitter{},
		SuitPicked:      &suitPickedEmitter{},
		PlayerPassed:    &playerPassedEmitter{},
		PileRecycled:    &pileRecycledEmitter{},
		DeckExhausted:   &deckExhaustedEmitter{},
		WinnerFound:     &winnerFoundEmitter{},
		TurnEnded:       &turnEndedEmitter{},
		GameOver:        &gameOverEmitter{},
	}
}

// AddListener subscribes listener to every event whose listener interface it
// implements.
func (b *Bus) AddListener(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardDrawnListener); ok {
		b.CardDrawn.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(SuitPickedListener); ok {
		b.SuitPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(PileRecycledListener); ok {
		b.PileRecycled.AddListener(l)
	}
	if l, ok := listener.(DeckExhaustedListener); ok {
		b.DeckExhausted.AddListener(l)
	}
	if l, ok := listener.(WinnerFoundListener); ok {
		b.WinnerFound.AddListener(l)
	}
	if l, ok := listener.(TurnEndedListener); ok {
		b.TurnEnded.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		b.GameOver.AddListener(l)
	}
}
