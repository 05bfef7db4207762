package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
	"othello/searcher"
)

func TestRunTerminates(t *testing.T) {
	e := New(searcher.NewRandom(3), searcher.NewRandom(17))

	black, white, moves := e.Run()

	// Every move adds exactly one piece to the board
	require.Equal(t, 4+len(moves), black+white)
	require.LessOrEqual(t, black+white, game.BoardSize*game.BoardSize)
	require.NotEmpty(t, moves)
	require.Equal(t, "BLACK", moves[0].Player)
	require.Equal(t, 1, moves[0].Step)
}

func TestRunRecordsMetrics(t *testing.T) {
	depth := 2
	bot := searcher.NewMinimax(depth, searcher.WithMetrics())
	e := New(bot, searcher.NewRandom(99))

	_, _, moves := e.Run()

	require.NotEmpty(t, moves)
	for _, m := range moves {
		if m.Player == "BLACK" {
			require.Equal(t, depth, m.Depth)
			require.Greater(t, m.Nodes, 0)
		}
	}
}

// Deeper search with the same evaluator should beat its shallow counterpart
// from either side of the board.
func TestDeeperSearchWins(t *testing.T) {
	shallow := func() Agent {
		return searcher.NewMinimax(1, searcher.WithEvaluationFn(game.EvaluateCorners))
	}
	deep := func() Agent {
		return searcher.NewMinimax(2, searcher.WithEvaluationFn(game.EvaluateCorners))
	}

	t.Run("deep as black", func(t *testing.T) {
		black, white, _ := New(deep(), shallow()).Run()
		require.Greater(t, black, white)
	})

	t.Run("deep as white", func(t *testing.T) {
		black, white, _ := New(shallow(), deep()).Run()
		require.Greater(t, white, black)
	})
}

// The corner-weighted evaluator should beat plain material count at equal
// depth from either side of the board.
func TestCornersBeatsMaterial(t *testing.T) {
	const depth = 4
	greedy := func() Agent {
		return searcher.NewMinimax(depth)
	}
	cornerAware := func() Agent {
		return searcher.NewMinimax(depth, searcher.WithEvaluationFn(game.EvaluateCorners))
	}

	t.Run("corners as black", func(t *testing.T) {
		black, white, _ := New(cornerAware(), greedy()).Run()
		require.Greater(t, black, white)
	})

	t.Run("corners as white", func(t *testing.T) {
		black, white, _ := New(greedy(), cornerAware()).Run()
		require.Greater(t, white, black)
	})
}

func TestWinner(t *testing.T) {
	require.Equal(t, "BLACK", Winner(40, 24))
	require.Equal(t, "WHITE", Winner(24, 40))
	require.Equal(t, "DRAW", Winner(32, 32))
}
