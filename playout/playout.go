// Package playout samples complete games under the same uniform random play
// model the exhaustive tree aggregates exactly. It exists as an independent
// cross-check: sampled frequencies must converge on the tree's
// probabilities.
package playout

import (
	"fmt"

	"golang.org/x/exp/rand"

	"tictactoe/game"
)

// Play runs a single game of uniformly random legal moves from board until
// it ends and returns the outcome. The caller's board is not touched.
func Play(board *game.Board, rng *rand.Rand) game.Outcome {
	board = board.Copy()
	for !board.Finished() {
		moves := board.LegalMoves()
		move := moves[rng.Intn(len(moves))]
		if err := board.ApplyMove(move.Row, move.Col); err != nil {
			panic(fmt.Sprintf("generated move %d,%d rejected: %v", move.Row, move.Col, err))
		}
	}
	return board.Outcome()
}

// Estimate holds empirical outcome frequencies over a batch of playouts.
type Estimate struct {
	XWins float64
	OWins float64
	Ties  float64
}

// EstimateOutcomes plays games independent random games from board and
// returns the observed outcome frequencies.
func EstimateOutcomes(board *game.Board, games int, rng *rand.Rand) Estimate {
	if games <= 0 {
		panic("must play at least one game")
	}

	var xWins, oWins, ties int
	for i := 0; i < games; i++ {
		switch Play(board, rng) {
		case game.XWins:
			xWins++
		case game.OWins:
			oWins++
		case game.Tie:
			ties++
		}
	}

	total := float64(games)
	return Estimate{
		XWins: float64(xWins) / total,
		OWins: float64(oWins) / total,
		Ties:  float64(ties) / total,
	}
}
