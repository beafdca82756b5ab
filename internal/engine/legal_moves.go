package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move for the colour, ordered by source
// square and then by generation order. It fails with ErrInvariantViolation
// when the colour does not have exactly one king.
func LegalMoves(board *chess.Board, colour chess.Colour) ([]chess.Move, error) {
	f, err := newFilter(board, colour)
	if err != nil {
		return nil, err
	}

	var legal []chess.Move
	for _, m := range PseudoMoves(board, colour) {
		if f.allows(m) {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// LegalMovesFrom returns the legal moves of the piece on sq. An empty
// square has none; an off-board square fails with ErrOutOfRange.
func LegalMovesFrom(board *chess.Board, sq chess.Square) ([]chess.Move, error) {
	piece, err := board.PieceAt(sq)
	if err != nil || piece.IsEmpty() {
		return nil, err
	}

	f, err := newFilter(board, piece.Colour)
	if err != nil {
		return nil, err
	}

	var legal []chess.Move
	for _, m := range PseudoMovesFrom(board, sq) {
		if f.allows(m) {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	f, err := newFilter(board, colour)
	if err != nil {
		return false, err
	}
	for _, m := range PseudoMoves(board, colour) {
		if f.allows(m) {
			return true, nil
		}
	}
	return false, nil
}

// IsLegal reports whether the move is legal for the piece standing on its
// source square.
func IsLegal(board *chess.Board, m chess.Move) (bool, error) {
	moves, err := LegalMovesFrom(board, m.From)
	if err != nil {
		return false, err
	}
	for _, candidate := range moves {
		if candidate == m {
			return true, nil
		}
	}
	return false, nil
}

// filter discards pseudo-legal moves that leave the mover's king attacked.
type filter struct {
	board   *chess.Board
	colour  chess.Colour
	king    chess.Square
	inCheck bool
}

func newFilter(board *chess.Board, colour chess.Colour) (*filter, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return nil, err
	}
	return &filter{
		board:   board,
		colour:  colour,
		king:    king,
		inCheck: IsSquareAttacked(board, king, colour.Opposite()),
	}, nil
}

// allows simulates the move on a scratch copy and checks the king.
func (f *filter) allows(m chess.Move) bool {
	piece := f.board.Get(m.From)

	if isCastle(piece, m) {
		if f.inCheck || !castlePathSafe(f.board, piece, m) {
			return false
		}
	}

	scratch := scratchCopy(f.board)
	makeMove(scratch, m)

	king := f.king
	if piece.Kind == chess.King {
		king = m.To
	}
	return !IsSquareAttacked(scratch, king, f.colour.Opposite())
}
