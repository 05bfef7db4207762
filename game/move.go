package game

import (
	"fmt"
	"strings"
)

// Move is a (row, col) placement, 0-indexed from the top-left corner.
type Move struct {
	Row int
	Col int
}

// String formats the move in rank-file notation, e.g. {2, 2} -> "3C".
func (m Move) String() string {
	return fmt.Sprintf("%d%c", m.Row+1, rune('A'+m.Col))
}

// ParseMove reads rank-file notation such as "3C" or "3c" back into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Move{}, fmt.Errorf("invalid move notation %q", s)
	}
	row := int(s[0] - '1')
	col := int(s[1] - 'A')
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Move{}, fmt.Errorf("move %q is off the board", s)
	}
	return Move{Row: row, Col: col}, nil
}
