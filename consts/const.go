package consts

import (
	"strings"
	"time"
)

const (
	_ = iota
	GameTypeBasic
	GameTypeCrazyEights
)

const (
	MinPlayers = 2
	MaxPlayers = 8

	DefaultCardsToDeal = 5
	DefaultPlayers     = 3
	DefaultGameType    = GameTypeCrazyEights

	// MaxTimesRecyclingDiscardPile bounds how often an exhausted deck is
	// refilled from the discard pile before the game is called off.
	MaxTimesRecyclingDiscardPile = 5

	// ManualAttempts is how many invalid selections a manual player may make
	// before the engine draws on their behalf.
	ManualAttempts = 3

	DefaultDelay = 300 * time.Millisecond
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInvalidCard     = NewErr(1, true, "Invalid card. ")
	ErrorsNoPlayers       = NewErr(1, true, "Game has no players. ")
	ErrorsNotEnoughCards  = NewErr(1, true, "Not enough cards to deal. ")
	ErrorsInputInvalid    = NewErr(1, false, "Input invalid. ")
	ErrorsGameTypeInvalid = NewErr(1, true, "Game type invalid. ")
	ErrorsGameCompleted   = NewErr(1, true, "Game already completed. ")
	ErrorsPlayersInvalid  = NewErr(1, true, "Players invalid. ")

	GameTypes = map[int]string{
		GameTypeBasic:       "Basic Card Game",
		GameTypeCrazyEights: "Crazy Eights",
	}
	GameTypesIds = []int{GameTypeBasic, GameTypeCrazyEights}
)

// GameTypeByName accepts either the display name or a short alias
// ("basic", "eights") and is case insensitive.
func GameTypeByName(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "basic", "cardgame":
		return GameTypeBasic, true
	case "eights", "crazyeights", "crazy-eights":
		return GameTypeCrazyEights, true
	}
	for _, id := range GameTypesIds {
		if strings.ToLower(GameTypes[id]) == name {
			return id, true
		}
	}
	return 0, false
}
