package game

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned when a move is applied to a finished board.
var ErrGameOver = errors.New("game is already over")

// OutOfBoundsError is returned when the move coordinates fall outside the
// grid.
type OutOfBoundsError struct {
	Row int
	Col int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %d,%d is outside the board", e.Row, e.Col)
}

// OccupiedError is returned when the target cell already holds a mark.
type OccupiedError struct {
	Occupant Mark
	Row      int
	Col      int
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("cell %d,%d is already taken by %s", e.Row, e.Col, e.Occupant)
}
