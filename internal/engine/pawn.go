package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pushes, the double push from the starting rank,
// diagonal captures and en passant. A move onto the last rank is emitted
// once per promotion kind.
func pawnMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	colour := piece.Colour
	dir := chess.ColourOffset(colour)

	// Forward moves
	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = addPawnMove(moves, from, one, colour)

		if from.Row == chess.PawnRank(colour) {
			two := from.Offset(2*dir, 0)
			if two.Valid() && board.Get(two).IsEmpty() {
				moves = append(moves, chess.NewMove(from, two))
			}
		}
	}

	// Captures
	for _, dc := range [...]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() {
			if target.Colour != colour {
				moves = addPawnMove(moves, from, to, colour)
			}
			continue
		}
		if isEnPassantCapture(board, from, to, colour) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// addPawnMove appends a pawn move, expanding it into one move per
// promotion kind when it lands on the last rank.
func addPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Row != chess.PromotionRank(colour) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// enPassantRow returns the row a pawn of the colour must stand on to
// capture en passant.
func enPassantRow(colour chess.Colour) int {
	opponent := colour.Opposite()
	return chess.PawnRank(opponent) + 2*chess.ColourOffset(opponent)
}

// isEnPassantCapture reports whether a diagonal step onto the empty square
// to is an en passant capture. Only the side to move may capture, and only
// the pawn that just double-stepped past the target.
func isEnPassantCapture(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	col, ok := board.EnPassantColumn()
	if !ok || colour != board.ToMove || to.Col != col || from.Row != enPassantRow(colour) {
		return false
	}
	return board.Get(chess.Sq(from.Row, to.Col)).Is(colour.Opposite(), chess.Pawn)
}

// isDoublePush reports whether a pawn move advanced two rows.
func isDoublePush(piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.Pawn && abs(m.To.Row-m.From.Row) == 2
}
