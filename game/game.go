package game

// Size is the side length of the board. The rules below are written against
// it, but the engine is only ever exercised at 3.
const Size = 3

// Mark is one player's symbol. The zero value means an empty cell.
type Mark uint8

const (
	NoMark Mark = iota
	X
	O
)

// Other returns the mark of the opponent.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Outcome is the terminal result of a game. The zero value means the game is
// still going.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	XWins
	OWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X"
	case OWins:
		return "O"
	case Tie:
		return "Tie"
	}
	return "None"
}

func winnerFor(m Mark) Outcome {
	if m == X {
		return XWins
	}
	return OWins
}

// Move is a single cell placement.
type Move struct {
	Row int
	Col int
}
