package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/config"
	"tictactoe/game"
	"tictactoe/gametree"
	"tictactoe/metrics"
	"tictactoe/playout"
)

func main() {
	conf := config.MustLoad()
	initLogger(conf.LogLevel)

	start := time.Now()
	root := gametree.Build(game.NewBoard())
	buildDuration := time.Since(start)
	log.Info().Dur("duration", buildDuration).Msg("game tree built")

	if conf.PrintTree {
		fmt.Println(root)
	}

	xWins := root.Probability(game.XWins)
	oWins := root.Probability(game.OWins)
	ties := root.Probability(game.Tie)
	fmt.Printf("\n\nX: %v\nO: %v\nTie: %v\nsum: %v\n", xWins, oWins, ties, xWins+oWins+ties)

	if conf.Playouts > 0 {
		rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		estimate := playout.EstimateOutcomes(game.NewBoard(), conf.Playouts, rng)
		log.Info().
			Int("games", conf.Playouts).
			Float64("x_wins", estimate.XWins).
			Float64("o_wins", estimate.OWins).
			Float64("ties", estimate.Ties).
			Msg("random playout estimate")
	}

	if conf.MetricsDir != "" {
		record := metrics.RunRecord{
			ID:            uuid.New(),
			StartTime:     start,
			BuildDuration: buildDuration,
			XWins:         xWins,
			OWins:         oWins,
			Ties:          ties,
			TreeMetric:    metrics.Measure(root),
		}
		if err := writeRun(conf.MetricsDir, record); err != nil {
			log.Error().Err(err).Msg("failed to write run metrics")
		}
	}
}

func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func writeRun(dir string, record metrics.RunRecord) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	return writer.WriteRun(record)
}
