package event

// Table is the post-turn view handed to display listeners. Cards are given by
// label so listeners never hold references into live piles.
type Table struct {
	GameName      string     `json:"game"`
	Turn          int        `json:"turn"`
	Hands         []HandView `json:"hands"`
	DiscardTop    string     `json:"discard_top"`
	DeckSize      int        `json:"deck_size"`
	CurrentPlayer string     `json:"current_player"`
	CurrentSuit   string     `json:"current_suit,omitempty"`
}

type HandView struct {
	PlayerName string   `json:"player"`
	Cards      []string `json:"cards"`
}
