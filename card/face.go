package card

type Face string

const (
	Ace   Face = "A"
	Two   Face = "2"
	Three Face = "3"
	Four  Face = "4"
	Five  Face = "5"
	Six   Face = "6"
	Seven Face = "7"
	Eight Face = "8"
	Nine  Face = "9"
	Ten   Face = "T"
	Jack  Face = "J"
	Queen Face = "Q"
	King  Face = "K"
)

type faceInfo struct {
	name string
	rank int
}

var faces = map[Face]faceInfo{
	Ace:   {name: "Ace", rank: 1},
	Two:   {name: "Two", rank: 2},
	Three: {name: "Three", rank: 3},
	Four:  {name: "Four", rank: 4},
	Five:  {name: "Five", rank: 5},
	Six:   {name: "Six", rank: 6},
	Seven: {name: "Seven", rank: 7},
	Eight: {name: "Eight", rank: 8},
	Nine:  {name: "Nine", rank: 9},
	Ten:   {name: "Ten", rank: 10},
	Jack:  {name: "Jack", rank: 11},
	Queen: {name: "Queen", rank: 12},
	King:  {name: "King", rank: 13},
}

var faceOrder = []Face{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Faces returns every face from Ace to King.
func Faces() []Face {
	out := make([]Face, len(faceOrder))
	copy(out, faceOrder)
	return out
}

func (f Face) Valid() bool {
	_, ok := faces[f]
	return ok
}

// Rank is 1 for Ace through 13 for King, 0 for an unknown face.
func (f Face) Rank() int {
	return faces[f].rank
}

func (f Face) Name() string {
	return faces[f].name
}
