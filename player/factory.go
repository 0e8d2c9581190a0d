package player

import (
	"fmt"

	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats numberOfPlayers players. When humanPlayerName is set
// the first seat is a manual player with that name; every other seat is an
// automatic bot.
func CreatePlayers(numberOfPlayers int, humanPlayerName string) ([]*game.Player, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers {
		return nil, fmt.Errorf("%wneed %d to %d players, got %d", consts.ErrorsPlayersInvalid, consts.MinPlayers, consts.MaxPlayers, numberOfPlayers)
	}
	players := make([]*game.Player, 0, numberOfPlayers)
	if humanPlayerName != "" {
		players = append(players, game.NewPlayer(humanPlayerName, true))
	}
	players = append(players, generateBots(numberOfPlayers-len(players), humanPlayerName)...)
	return players, nil
}

// generateBots picks consecutive names from a random starting point in the
// roster, skipping the human's name.
func generateBots(amount int, taken string) []*game.Player {
	bots := make([]*game.Player, 0, amount)
	offset := rand.Intn(len(botNames))
	for i := 0; len(bots) < amount && i < len(botNames); i++ {
		name := botNames[(offset+i)%len(botNames)]
		if name == taken {
			continue
		}
		bots = append(bots, game.NewPlayer(name, false))
	}
	return bots
}
