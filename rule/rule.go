package rule

import (
	"fmt"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/game"
)

// New returns a fresh rule set for gameType. Rule sets carry per-game state,
// so every game needs its own.
func New(gameType int) (game.Rules, error) {
	switch gameType {
	case consts.GameTypeBasic:
		return NewBasic(), nil
	case consts.GameTypeCrazyEights:
		return NewCrazyEights(), nil
	}
	return nil, fmt.Errorf("%wunknown game type %d", consts.ErrorsGameTypeInvalid, gameType)
}

func ByName(name string) (game.Rules, error) {
	gameType, ok := consts.GameTypeByName(name)
	if !ok {
		return nil, fmt.Errorf("%wunknown game '%s'", consts.ErrorsGameTypeInvalid, name)
	}
	return New(gameType)
}
