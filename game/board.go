package game

import (
	"errors"
	"fmt"
	"strings"
)

// BoardSize is the side length of the Othello grid.
const BoardSize = 8

// Player identifies a side. BLACK maximizes evaluation scores, WHITE minimizes.
type Player int8

const (
	Black Player = 1
	White Player = -1
)

// Opponent returns the opposing player.
func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	if p == Black {
		return "BLACK"
	}
	return "WHITE"
}

// Piece returns the cell content for a piece placed by p.
func (p Player) Piece() Piece {
	return Piece(p)
}

// Piece is the content of a single board cell.
type Piece int8

const (
	BlackPiece Piece = 1
	NoPiece    Piece = 0
	WhitePiece Piece = -1
)

// ErrIllegalMove is returned by PlacePiece for out-of-bounds, occupied or
// non-capturing placements.
var ErrIllegalMove = errors.New("illegal move")

// The 8 compass directions a capture run can extend in.
var directions = [8][2]int{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, 1}, {1, 1}, {-1, -1}, {1, -1},
}

// Board holds an 8x8 Othello position. NewBoard returns the standard starting
// position; Clone copies are fully independent, so hypothetical lines during
// search never touch the caller's board.
type Board struct {
	cells [BoardSize][BoardSize]Piece
}

func NewBoard() *Board {
	b := &Board{}
	b.cells[3][3] = BlackPiece
	b.cells[4][4] = BlackPiece
	b.cells[3][4] = WhitePiece
	b.cells[4][3] = WhitePiece
	return b
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	copied := *b
	return &copied
}

// At returns the cell content at (row, col).
func (b *Board) At(row, col int) Piece {
	return b.cells[row][col]
}

// Set overwrites a single cell without applying the capture rule. Intended for
// composing positions; regular play goes through PlacePiece.
func (b *Board) Set(row, col int, piece Piece) {
	b.cells[row][col] = piece
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// endpoint marks the own-color cell terminating a run of opponent pieces in
// direction (dr, dc) from a candidate placement.
type endpoint struct {
	dr, dc   int
	row, col int
}

// captureEndpoints walks outward in each compass direction from (row, col).
// A direction qualifies iff at least one opponent cell was crossed and the
// walk stopped on an in-bounds cell holding the mover's own piece.
func (b *Board) captureEndpoints(player Player, row, col int) []endpoint {
	var endpoints []endpoint
	opponent := player.Opponent().Piece()
	for _, dir := range directions {
		r, c := row+dir[0], col+dir[1]
		sandwiched := false
		for b.InBounds(r, c) && b.cells[r][c] == opponent {
			sandwiched = true
			r += dir[0]
			c += dir[1]
		}
		if sandwiched && b.InBounds(r, c) && b.cells[r][c] == player.Piece() {
			endpoints = append(endpoints, endpoint{dr: dir[0], dc: dir[1], row: r, col: c})
		}
	}
	return endpoints
}

// IsLegalMove reports whether player may place at (row, col): in bounds, on an
// empty cell, capturing at least one opponent run.
func (b *Board) IsLegalMove(player Player, row, col int) bool {
	return b.InBounds(row, col) &&
		b.cells[row][col] == NoPiece &&
		len(b.captureEndpoints(player, row, col)) > 0
}

// PlacePiece puts player's piece at (row, col) and flips every sandwiched
// opponent run. The board is only mutated when the move is legal.
func (b *Board) PlacePiece(player Player, row, col int) error {
	if !b.IsLegalMove(player, row, col) {
		return fmt.Errorf("%w at row %d, col %d", ErrIllegalMove, row, col)
	}
	piece := player.Piece()
	b.cells[row][col] = piece
	for _, e := range b.captureEndpoints(player, row, col) {
		for r, c := row+e.dr, col+e.dc; r != e.row || c != e.col; r, c = r+e.dr, c+e.dc {
			b.cells[r][c] = piece
		}
	}
	return nil
}

// LegalMoves returns every legal move for player in row-major scan order.
func (b *Board) LegalMoves(player Player) []Move {
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.IsLegalMove(player, row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// PieceCounts returns the number of black and white pieces on the board.
func (b *Board) PieceCounts() (black, white int) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b.cells[row][col] {
			case BlackPiece:
				black++
			case WhitePiece:
				white++
			}
		}
	}
	return black, white
}

// String renders the position as a text grid with file letters and rank numbers.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   A B C D E F G H\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d  ", row+1)
		for col := 0; col < BoardSize; col++ {
			switch b.cells[row][col] {
			case BlackPiece:
				sb.WriteString("B ")
			case WhitePiece:
				sb.WriteString("W ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
