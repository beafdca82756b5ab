package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, king, colour.Opposite()), nil
}

// FindKing finds the king of the given colour on the board. A colour with
// no king, or more than one, is an invariant violation.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	var king chess.Square
	count := 0
	board.EachPiece(func(sq chess.Square, piece chess.Piece) {
		if piece.Is(colour, chess.King) {
			king = sq
			count++
		}
	})
	if count != 1 {
		return chess.Square{}, errors.Wrapf(errors.ErrInvariantViolation, "%v has %d kings", colour, count)
	}
	return king, nil
}

// IsSquareAttacked returns true if a piece of byColour could capture on the
// square. Pawns attack their forward diagonals whether or not the square is
// occupied; pawn pushes and castling never attack.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one row behind, seen from byColour's side.
	pawnRow := -chess.ColourOffset(byColour)
	for _, dc := range [...]int{-1, 1} {
		if board.Get(sq.Offset(pawnRow, dc)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	if attackedByStep(board, sq, byColour, chess.Knight, knightOffsets) ||
		attackedByStep(board, sq, byColour, chess.King, kingOffsets) {
		return true
	}

	return attackedBySlide(board, sq, byColour, chess.Bishop, diagonalDirs) ||
		attackedBySlide(board, sq, byColour, chess.Rook, straightDirs)
}

// attackedByStep looks for a fixed-offset attacker of the given kind.
func attackedByStep(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.PieceKind, offsets []offset) bool {
	for _, o := range offsets {
		if board.Get(sq.Offset(o[0], o[1])).Is(byColour, kind) {
			return true
		}
	}
	return false
}

// attackedBySlide walks each ray to the first piece and reports whether it
// is a slider of the given kind or a queen.
func attackedBySlide(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.PieceKind, dirs []offset) bool {
	for _, dir := range dirs {
		for s := sq.Offset(dir[0], dir[1]); s.Valid(); s = s.Offset(dir[0], dir[1]) {
			piece := board.Get(s)
			if piece.IsEmpty() {
				continue
			}
			if piece.Is(byColour, kind) || piece.Is(byColour, chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}
