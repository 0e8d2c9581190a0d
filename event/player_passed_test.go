package event_test

import (
	"testing"

	"github.com/ratel-online/eights/event"
	"github.com/stretchr/testify/require"
)

func TestPlayerPassed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.PlayerPassed.AddListener(listenerOne)
	bus.PlayerPassed.AddListener(listenerTwo)

	payloads := []event.PlayerPassedPayload{
		{
			PlayerName: "Someone",
		},
		{
			PlayerName: "Somebody",
		},
	}

	for _, payload := range payloads {
		bus.PlayerPassed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
