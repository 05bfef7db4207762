package game

import "fmt"

// Evaluate scores a position from BLACK's perspective: positive favors BLACK,
// negative favors WHITE. Evaluators must be deterministic, side-effect free
// and total over any reachable board.
type Evaluate func(*Board) int

// CornerWeight is the bonus EvaluateCorners applies per owned corner.
const CornerWeight = 25

var corners = [4][2]int{
	{0, 0},
	{0, BoardSize - 1},
	{BoardSize - 1, 0},
	{BoardSize - 1, BoardSize - 1},
}

// EvaluateMaterial scores by piece difference alone.
func EvaluateMaterial(b *Board) int {
	black, white := b.PieceCounts()
	return black - white
}

// EvaluateCorners adds a corner-ownership bonus on top of material.
func EvaluateCorners(b *Board) int {
	score := 0
	for _, corner := range corners {
		score += int(b.At(corner[0], corner[1]))
	}
	return EvaluateMaterial(b) + CornerWeight*score
}

// EvaluatorNamed resolves an evaluator from its configuration name.
func EvaluatorNamed(name string) (Evaluate, error) {
	switch name {
	case "material":
		return EvaluateMaterial, nil
	case "corners":
		return EvaluateCorners, nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
}
