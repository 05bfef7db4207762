package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, BlackPiece, b.At(3, 3))
	require.Equal(t, BlackPiece, b.At(4, 4))
	require.Equal(t, WhitePiece, b.At(3, 4))
	require.Equal(t, WhitePiece, b.At(4, 3))

	black, white := b.PieceCounts()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
}

func TestOpponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Black, Black.Opponent().Opponent())
	require.Equal(t, White, White.Opponent().Opponent())
}

func TestIsLegalMove(t *testing.T) {
	t.Run("opening moves", func(t *testing.T) {
		b := NewBoard()

		require.True(t, b.IsLegalMove(White, 2, 3))
		require.True(t, b.IsLegalMove(White, 4, 5))
		require.True(t, b.IsLegalMove(Black, 2, 4))
		require.True(t, b.IsLegalMove(Black, 3, 5))
	})

	t.Run("no enclosing piece", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.IsLegalMove(Black, 0, 0))
		// Adjacent to own piece only, nothing to flip
		require.False(t, b.IsLegalMove(Black, 2, 3))
	})

	t.Run("occupied cell", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.IsLegalMove(Black, 3, 3))
		require.False(t, b.IsLegalMove(White, 3, 3))
	})

	t.Run("out of bounds", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.IsLegalMove(Black, -1, 0))
		require.False(t, b.IsLegalMove(Black, 0, -1))
		require.False(t, b.IsLegalMove(Black, 8, 0))
		require.False(t, b.IsLegalMove(Black, 0, 8))
	})

	t.Run("opponent run to the edge without an enclosing piece", func(t *testing.T) {
		var b Board
		b.Set(0, 1, WhitePiece)
		b.Set(0, 2, WhitePiece)

		require.False(t, b.IsLegalMove(Black, 0, 0))

		b.Set(0, 3, BlackPiece)

		require.True(t, b.IsLegalMove(Black, 0, 0))
	})
}

func TestPlacePiece(t *testing.T) {
	t.Run("illegal placements", func(t *testing.T) {
		b := NewBoard()

		require.ErrorIs(t, b.PlacePiece(Black, 3, 3), ErrIllegalMove)  // Occupied
		require.ErrorIs(t, b.PlacePiece(Black, -1, 0), ErrIllegalMove) // Out of bounds
		require.ErrorIs(t, b.PlacePiece(Black, 2, 3), ErrIllegalMove)  // No white piece to flip
	})

	t.Run("flips a single piece", func(t *testing.T) {
		b := NewBoard()

		require.NoError(t, b.PlacePiece(Black, 3, 5))

		require.Equal(t, BlackPiece, b.At(3, 5))
		require.Equal(t, BlackPiece, b.At(3, 4)) // Flipped from white
	})

	t.Run("flips exactly one sandwiched run", func(t *testing.T) {
		b := NewBoard()

		require.NoError(t, b.PlacePiece(White, 2, 3))

		require.Equal(t, WhitePiece, b.At(2, 3))
		require.Equal(t, WhitePiece, b.At(3, 3)) // Flipped from black
		require.Equal(t, BlackPiece, b.At(4, 4)) // Untouched

		black, white := b.PieceCounts()
		require.Equal(t, 1, black)
		require.Equal(t, 4, white)
	})

	t.Run("flips multiple pieces in one direction", func(t *testing.T) {
		b := NewBoard()
		b.Set(3, 5, WhitePiece)
		b.Set(3, 6, WhitePiece)

		require.NoError(t, b.PlacePiece(Black, 3, 7))

		for col := 3; col <= 7; col++ {
			require.Equal(t, BlackPiece, b.At(3, col))
		}
	})

	t.Run("flips in two directions at once", func(t *testing.T) {
		b := NewBoard()
		b.Set(3, 5, WhitePiece)
		b.Set(4, 4, WhitePiece)
		b.Set(4, 5, WhitePiece)
		b.Set(5, 4, BlackPiece)

		require.NoError(t, b.PlacePiece(Black, 3, 6))

		for col := 3; col <= 6; col++ {
			require.Equal(t, BlackPiece, b.At(3, col))
		}
		require.Equal(t, BlackPiece, b.At(4, 5)) // Flipped on the diagonal
		require.Equal(t, WhitePiece, b.At(4, 4)) // Not sandwiched, untouched
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("opening positions in row-major order", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, b.LegalMoves(Black))
		require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, b.LegalMoves(White))
	})

	t.Run("matches the single-cell query on a midgame board", func(t *testing.T) {
		b := midgameBoard(t, 6)

		for _, player := range []Player{Black, White} {
			legal := map[Move]bool{}
			for _, m := range b.LegalMoves(player) {
				legal[m] = true
			}
			for row := 0; row < BoardSize; row++ {
				for col := 0; col < BoardSize; col++ {
					require.Equal(t, legal[Move{row, col}], b.IsLegalMove(player, row, col),
						"bulk and single-cell legality disagree at (%d,%d) for %s", row, col, player)
				}
			}
		}
	})

	t.Run("placement succeeds exactly on legal moves", func(t *testing.T) {
		base := NewBoard()
		legal := map[Move]bool{}
		for _, m := range base.LegalMoves(Black) {
			legal[m] = true
		}

		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				b := base.Clone()
				err := b.PlacePiece(Black, row, col)
				if legal[Move{row, col}] {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, ErrIllegalMove)
				}
			}
		}
	})
}

func TestClone(t *testing.T) {
	b := NewBoard()
	c := b.Clone()

	require.NoError(t, c.PlacePiece(Black, 2, 4))

	require.Equal(t, NoPiece, b.At(2, 4))
	require.Equal(t, WhitePiece, b.At(3, 4))

	black, white := b.PieceCounts()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
}

func TestBoardString(t *testing.T) {
	s := NewBoard().String()

	require.Contains(t, s, "A B C D E F G H")
	require.Contains(t, s, "4  . . . B W . . .")
	require.Contains(t, s, "5  . . . W B . . .")
}

// midgameBoard plays plies moves from the starting position, each player
// taking its first legal move in turn.
func midgameBoard(t *testing.T, plies int) *Board {
	t.Helper()
	b := NewBoard()
	player := Black
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves(player)
		require.NotEmpty(t, moves)
		require.NoError(t, b.PlacePiece(player, moves[0].Row, moves[0].Col))
		player = player.Opponent()
	}
	return b
}
