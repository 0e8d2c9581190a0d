package game

// Player is a named seat at the table. Manual players are asked for their
// moves through the game's ManualInput; the others play automatically.
type Player struct {
	name   string
	manual bool
	hand   *Pile
}

func NewPlayer(name string, manual bool) *Player {
	return &Player{
		name:   name,
		manual: manual,
		hand:   NewPile(false),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsManual() bool {
	return p.manual
}

func (p *Player) Hand() *Pile {
	return p.hand
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

// resetHand replaces the hand with a fresh pile; earlier references to the
// old hand go stale on purpose.
func (p *Player) resetHand() {
	p.hand = NewPile(false)
}
