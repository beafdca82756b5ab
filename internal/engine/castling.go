package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

const (
	kingHomeCol      = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
)

// castle describes the squares involved in one castling move.
type castle struct {
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	// Squares between king and rook that must be empty.
	between []chess.Square
	// Squares the king stands on or crosses, start and end included.
	kingPath []chess.Square
}

// castleFor returns the castling geometry for a colour and side.
func castleFor(colour chess.Colour, kingside bool) castle {
	row := chess.BackRank(colour)
	sq := func(col int) chess.Square { return chess.Sq(row, col) }

	if kingside {
		return castle{
			kingTo:   sq(6),
			rookFrom: sq(kingsideRookCol),
			rookTo:   sq(5),
			between:  []chess.Square{sq(5), sq(6)},
			kingPath: []chess.Square{sq(4), sq(5), sq(6)},
		}
	}
	return castle{
		kingTo:   sq(2),
		rookFrom: sq(queensideRookCol),
		rookTo:   sq(3),
		between:  []chess.Square{sq(1), sq(2), sq(3)},
		kingPath: []chess.Square{sq(4), sq(3), sq(2)},
	}
}

// isCastle reports whether the move is a king moving two columns.
func isCastle(piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.King && abs(m.To.Col-m.From.Col) == 2
}

// castleForMove returns the geometry of a castling move.
func castleForMove(piece chess.Piece, m chess.Move) castle {
	return castleFor(piece.Colour, m.To.Col > m.From.Col)
}

// castlingMoves offers the king's two-square castling moves when the right
// is intact, the king and rook are on their home squares and the squares
// between them are empty. Attacks are left to the legality filter.
func castlingMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	colour := piece.Colour
	if from != chess.Sq(chess.BackRank(colour), kingHomeCol) {
		return moves
	}

	for _, kingside := range [...]bool{true, false} {
		if !board.Castling.Has(colour, kingside) {
			continue
		}
		c := castleFor(colour, kingside)
		if !board.Get(c.rookFrom).Is(colour, chess.Rook) || !allEmpty(board, c.between) {
			continue
		}
		moves = append(moves, chess.NewMove(from, c.kingTo))
	}
	return moves
}

// castlePathSafe reports whether no square the king occupies or crosses
// while castling is attacked by the opponent.
func castlePathSafe(board *chess.Board, piece chess.Piece, m chess.Move) bool {
	opponent := piece.Colour.Opposite()
	for _, sq := range castleForMove(piece, m).kingPath {
		if IsSquareAttacked(board, sq, opponent) {
			return false
		}
	}
	return true
}

// updateCastlingRightsForRook removes the right tied to a rook's home square
// when a rook leaves it or is captured on it.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.BackRank(colour) {
		return
	}
	switch sq.Col {
	case kingsideRookCol:
		board.Castling.Revoke(colour, true)
	case queensideRookCol:
		board.Castling.Revoke(colour, false)
	}
}

func allEmpty(board *chess.Board, squares []chess.Square) bool {
	for _, sq := range squares {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}
