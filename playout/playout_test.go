package playout

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"tictactoe/game"
)

func TestPlay(t *testing.T) {
	t.Run("always reaches a terminal outcome", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 100; i++ {
			outcome := Play(game.NewBoard(), rng)
			require.Contains(t, []game.Outcome{game.XWins, game.OWins, game.Tie}, outcome)
		}
	})

	t.Run("leaves the caller's board untouched", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		b := game.NewBoard()

		Play(b, rng)

		require.Len(t, b.LegalMoves(), 9, "The starting board should still be empty")
		require.False(t, b.Finished())
	})

	t.Run("returns the outcome of an already finished board", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		b := game.NewBoard()
		for _, move := range []game.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}} {
			require.NoError(t, b.ApplyMove(move.Row, move.Col))
		}

		require.Equal(t, game.XWins, Play(b, rng))
	})
}

func TestEstimateOutcomes(t *testing.T) {
	t.Run("frequencies sum to one", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4))

		estimate := EstimateOutcomes(game.NewBoard(), 1000, rng)

		require.InDelta(t, 1.0, estimate.XWins+estimate.OWins+estimate.Ties, 1e-9)
	})

	t.Run("converges on the exhaustive probabilities", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))

		estimate := EstimateOutcomes(game.NewBoard(), 20000, rng)

		// Exact values from brute-force enumeration; 20k games keeps the
		// sampling error well inside the tolerance.
		require.InDelta(t, 737.0/1260.0, estimate.XWins, 0.03)
		require.InDelta(t, 121.0/420.0, estimate.OWins, 0.03)
		require.InDelta(t, 8.0/63.0, estimate.Ties, 0.03)
	})
}
