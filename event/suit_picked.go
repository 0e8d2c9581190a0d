package event

import "github.com/ratel-online/eights/card"

type SuitPickedPayload struct {
	PlayerName string
	Suit       card.Suit
}

type SuitPickedListener interface {
	OnSuitPicked(SuitPickedPayload)
}

type suitPickedEmitter struct {
	listeners []SuitPickedListener
}

func (e *suitPickedEmitter) AddListener(listener SuitPickedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *suitPickedEmitter) Emit(payload SuitPickedPayload) {
	for _, listener := range e.listeners {
		listener.OnSuitPicked(payload)
	}
}
