// othello plays Reversi with a depth-bounded alpha-beta searcher: an
// interactive terminal game, a scripted bot demo, and self-play experiments.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/searcher"
	"othello/ui"
)

var (
	flagPlay       = flag.Bool("play", false, "Play interactively against the bot")
	flagExperiment = flag.String("experiment", "", "Run an experiment (depth or evaluator)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg.LogLevel)

	switch {
	case *flagPlay:
		err = runPlay(cfg)
	case *flagExperiment != "":
		err = runExperiment(cfg, *flagExperiment)
	default:
		err = runDemo()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func initLogger(levelName string) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// runDemo plays one scripted game: a material searcher as BLACK against a
// corner-weighted searcher of the same depth as WHITE.
func runDemo() error {
	const depth = 3
	greedy := searcher.NewMinimax(depth)
	cornerAware := searcher.NewMinimax(depth, searcher.WithEvaluationFn(game.EvaluateCorners))

	e := engine.New(greedy, cornerAware)
	black, white, moves := e.Run()

	fmt.Println(e.State)
	fmt.Printf("Final piece count after %d moves: %d black pieces, %d white pieces (%s)\n",
		len(moves), black, white, engine.Winner(black, white))
	return nil
}

func runPlay(cfg *config.Config) error {
	evaluate, err := game.EvaluatorNamed(cfg.Play.Evaluator)
	if err != nil {
		return err
	}
	bot := searcher.NewMinimax(cfg.Play.Depth, searcher.WithEvaluationFn(evaluate))

	app := tview.NewApplication()
	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	board := ui.NewBoardUI(app, hint, bot)
	board.Box.SetBorder(true)
	board.Box.SetTitle(" othello ")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, 0, 1, true).
		AddItem(hint, 3, 0, false)

	return app.SetRoot(layout, true).SetFocus(board.Box).Run()
}

func runExperiment(cfg *config.Config, name string) error {
	games := cfg.Experiment.Games
	outputDir := cfg.Experiment.OutputDir
	switch name {
	case "depth":
		return experiments.RunDepthExperiment(games, outputDir)
	case "evaluator":
		return experiments.RunEvaluatorExperiment(games, outputDir)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
}
