package searcher

import (
	"math"

	"othello/experiments/metrics"
	"othello/game"
)

// Option configures a Minimax searcher.
type Option func(*Minimax)

// WithEvaluationFn sets the static evaluator applied at leaves and cutoffs.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithMetrics makes the searcher collect node/leaf/cutoff counters per search.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// Minimax finds the minimax-optimal move under depth-bounded alpha-beta
// pruning. Scores are signed from BLACK's perspective at every ply: BLACK
// maximizes and WHITE minimizes, regardless of whose turn it is.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	m := &Minimax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for player on board. ok is false exactly when
// player has no legal move, or when the searcher was built with depth 0; both
// mean "no move available" to the caller.
func (m *Minimax) FindMove(board *game.Board, player game.Player) (game.Move, bool, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	score, move, ok := m.search(board, player, m.depth, math.MinInt, math.MaxInt)
	m.metrics.SetScore(score)
	return move, ok, m.metrics.Complete()
}

// search recurses one ply per legal move, threading the same running
// alpha/beta window across sibling iterations. The improvement test is
// strictly > for BLACK and strictly < for WHITE, so a tie keeps the first
// move in row-major order; the math.MinInt/math.MaxInt sentinels sit outside
// any reachable evaluation, so the first child always replaces them.
func (m *Minimax) search(board *game.Board, player game.Player, depth, alpha, beta int) (int, game.Move, bool) {
	moves := board.LegalMoves(player)
	if depth == 0 || len(moves) == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(board), game.Move{}, false
	}

	m.metrics.AddNode()
	var bestMove game.Move
	bestScore := math.MinInt
	if player == game.White {
		bestScore = math.MaxInt
	}
	for _, move := range moves {
		next := board.Clone()
		if err := next.PlacePiece(player, move.Row, move.Col); err != nil {
			// LegalMoves only returns playable moves
			panic(err)
		}
		score, _, _ := m.search(next, player.Opponent(), depth-1, alpha, beta)
		if (player == game.Black && score > bestScore) ||
			(player == game.White && score < bestScore) {
			bestScore = score
			bestMove = move
		}
		if player == game.Black {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return bestScore, bestMove, true
}
