package engine

import (
	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
)

// Agent picks a move for a player on a board, reporting search metrics when it
// collects them. ok is false when the player has no move to make.
type Agent interface {
	FindMove(board *game.Board, player game.Player) (move game.Move, ok bool, metric metrics.SearchMetric)
}

// Engine drives a local game between two agents on a shared board, BLACK
// moving first.
//
// Run stops as soon as the player to move has no move, without checking
// whether the opponent could still play. Official Othello rules pass the
// blocked player's turn instead; the early stop is a known deviation and is
// kept intentionally.
type Engine struct {
	State  *game.Board
	agents map[game.Player]Agent
}

func New(black, white Agent) *Engine {
	return &Engine{
		State: game.NewBoard(),
		agents: map[game.Player]Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run plays the game to its end and returns the final piece counts along with
// one metric per move played.
func (e *Engine) Run() (blackPieces, whitePieces int, moves []metrics.MoveMetric) {
	player := game.Black
	step := 1
	for {
		move, ok, metric := e.agents[player].FindMove(e.State, player)
		if !ok {
			break
		}
		if err := e.State.PlacePiece(player, move.Row, move.Col); err != nil {
			// Agents only propose moves they have verified as legal
			panic(err)
		}
		moves = append(moves, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: metric,
		})
		black, white := e.State.PieceCounts()
		log.Debug().Msgf("step %d: %s moved at %s (black=%d white=%d)", step, player, move, black, white)
		player = player.Opponent()
		step++
	}
	blackPieces, whitePieces = e.State.PieceCounts()
	return blackPieces, whitePieces, moves
}

// Winner names the side holding more pieces, or "DRAW".
func Winner(blackPieces, whitePieces int) string {
	switch {
	case blackPieces > whitePieces:
		return game.Black.String()
	case whitePieces > blackPieces:
		return game.White.String()
	default:
		return "DRAW"
	}
}
