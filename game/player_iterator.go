package game

// PlayerIterator keeps the fixed seating order and whose turn it is.
type PlayerIterator struct {
	players []*Player
	cycler  *Cycler
}

func newPlayerIterator(players []*Player) *PlayerIterator {
	seated := make([]*Player, len(players))
	copy(seated, players)
	return &PlayerIterator{
		players: seated,
		cycler:  NewCycler(len(seated)),
	}
}

func (i *PlayerIterator) Current() *Player {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Next() *Player {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) ForEach(function func(player *Player)) {
	for _, player := range i.players {
		function(player)
	}
}

func (i *PlayerIterator) Players() []*Player {
	players := make([]*Player, len(i.players))
	copy(players, i.players)
	return players
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) reset() {
	i.cycler.Reset()
}
