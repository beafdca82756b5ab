package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// scratchCopy copies the position without its history, for simulating a
// candidate move.
func scratchCopy(board *chess.Board) *chess.Board {
	scratch := *board
	scratch.History = nil
	return &scratch
}
