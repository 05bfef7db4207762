package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

// RunDepthExperiment pits corner-weighted searchers of increasing depth
// against a depth-1 baseline.
func RunDepthExperiment(games int, outputDir string) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 1, Evaluator: "corners"}
	deeperConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 2, Evaluator: "corners"},
		{ID: 2, Kind: "minimax", Depth: 3, Evaluator: "corners"},
		{ID: 3, Kind: "minimax", Depth: 4, Evaluator: "corners"},
	}

	// Each matchup pairs the baseline agent against a deeper agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range deeperConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", games, outputDir, append(deeperConfigs, baseline), matchUps)
}

// RunEvaluatorExperiment compares the corner-weighted evaluator, plain
// material counting and a random-move baseline at a fixed depth.
func RunEvaluatorExperiment(games int, outputDir string) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 3, Evaluator: "material"},
		{ID: 2, Kind: "minimax", Depth: 3, Evaluator: "corners"},
		{ID: 3, Kind: "random"},
	}
	matchUps := [][2]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[2], configs[0]},
		{configs[2], configs[1]},
	}

	return runExperiment("evaluator", games, outputDir, configs, matchUps)
}

// runExperiment plays a number of games for each matchup, alternating colors
// between games, and stores agent configs plus game and move records as CSV.
// Minimax agents are deterministic, so repeated games with the same colors
// mainly sample search timing.
func runExperiment(name string, games int, outputDir string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent %d and agent %d...",
			mi+1, len(matchUps), matchup[0].ID, matchup[1].ID)

		for i := 0; i < games; i++ {
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}

			count++
			gameMetric, moveMetrics := runGame(black, white, uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
				mi+1, len(matchUps), i+1, games, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name, outputDir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored results under %s", writer.BaseDir())
	return nil
}

func runGame(black, white metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.New(newAgent(black, seed), newAgent(white, seed+1))

	start := time.Now()
	blackPieces, whitePieces, moves := e.Run()

	return metrics.GameMetric{
		StartTime:   start,
		Duration:    time.Since(start),
		TotalMoves:  len(moves),
		BlackPieces: blackPieces,
		WhitePieces: whitePieces,
		Winner:      engine.Winner(blackPieces, whitePieces),
	}, moves
}

func newAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	switch config.Kind {
	case "random":
		return searcher.NewRandom(seed)
	case "minimax":
		evaluate, err := game.EvaluatorNamed(config.Evaluator)
		if err != nil {
			panic(err)
		}
		return searcher.NewMinimax(config.Depth,
			searcher.WithEvaluationFn(evaluate),
			searcher.WithMetrics())
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
