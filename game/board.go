package game

import "fmt"

// Board holds the grid, whose turn it is, and the outcome once the game has
// ended. It is mutated only through ApplyMove; branching code copies first.
type Board struct {
	cells   [Size][Size]Mark
	turn    Mark
	outcome Outcome
}

// NewBoard returns an empty board with X to move.
func NewBoard() *Board {
	return &Board{turn: X}
}

// Turn returns the mark that moves next.
func (b *Board) Turn() Mark {
	return b.turn
}

// Outcome returns the result of the game, or NoOutcome while it is ongoing.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Finished reports whether the game has ended.
func (b *Board) Finished() bool {
	return b.outcome != NoOutcome
}

// At returns the mark occupying the given cell, or NoMark if it is empty.
func (b *Board) At(row, col int) Mark {
	return b.cells[row][col]
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// ApplyMove places the current turn's mark at (row, col), flips the turn and
// recomputes the outcome. On failure the board is left untouched.
func (b *Board) ApplyMove(row, col int) error {
	if b.Finished() {
		return ErrGameOver
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return &OutOfBoundsError{Row: row, Col: col}
	}
	if occupant := b.cells[row][col]; occupant != NoMark {
		return &OccupiedError{Occupant: occupant, Row: row, Col: col}
	}

	b.cells[row][col] = b.turn
	b.turn = b.turn.Other()
	b.outcome = b.findOutcome()
	return nil
}

// LegalMoves returns every empty cell in row-major order. It is empty exactly
// when the game is over or the board is full.
func (b *Board) LegalMoves() []Move {
	if b.Finished() {
		return nil
	}

	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == NoMark {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Successors returns one new board per legal move, in LegalMoves order. Every
// generated move is placeable; a rejection is a bug in the engine itself.
func (b *Board) Successors() []*Board {
	moves := b.LegalMoves()

	successors := make([]*Board, 0, len(moves))
	for _, move := range moves {
		next := b.Copy()
		if err := next.ApplyMove(move.Row, move.Col); err != nil {
			panic(fmt.Sprintf("generated move %d,%d rejected: %v", move.Row, move.Col, err))
		}
		successors = append(successors, next)
	}
	return successors
}

// findOutcome rescans the whole grid after every move: rows, then columns,
// then the main diagonal, then the anti-diagonal, then a full-board check
// for a tie. Wins are not tracked incrementally.
func (b *Board) findOutcome() Outcome {
	for row := 0; row < Size; row++ {
		if m := b.lineWinner(row, 0, 0, 1); m != NoMark {
			return winnerFor(m)
		}
	}
	for col := 0; col < Size; col++ {
		if m := b.lineWinner(0, col, 1, 0); m != NoMark {
			return winnerFor(m)
		}
	}
	if m := b.lineWinner(0, 0, 1, 1); m != NoMark {
		return winnerFor(m)
	}
	if m := b.lineWinner(0, Size-1, 1, -1); m != NoMark {
		return winnerFor(m)
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == NoMark {
				return NoOutcome
			}
		}
	}
	return Tie
}

// lineWinner walks the length-Size line starting at (row, col) with step
// (dRow, dCol) and returns the mark filling it, or NoMark.
func (b *Board) lineWinner(row, col, dRow, dCol int) Mark {
	first := b.cells[row][col]
	if first == NoMark {
		return NoMark
	}
	for i := 1; i < Size; i++ {
		if b.cells[row+i*dRow][col+i*dCol] != first {
			return NoMark
		}
	}
	return first
}
