package event

type DeckExhaustedPayload struct {
	Recycles int
}

type DeckExhaustedListener interface {
	OnDeckExhausted(DeckExhaustedPayload)
}

type deckExhaustedEmitter struct {
	listeners []DeckExhaustedListener
}

func (e *deckExhaustedEmitter) AddListener(listener DeckExhaustedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *deckExhaustedEmitter) Emit(payload DeckExhaustedPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckExhausted(payload)
	}
}
