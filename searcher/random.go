package searcher

import (
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

// Random plays a uniformly random legal move. It serves as a baseline
// opponent in experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(board *game.Board, player game.Player) (game.Move, bool, metrics.SearchMetric) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false, metrics.SearchMetric{}
	}
	return moves[r.rng.Intn(len(moves))], true, metrics.SearchMetric{}
}
