package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove applies a move for the side to move and updates the board
// state. The move must be one of LegalMoves(board, board.ToMove); any other
// move fails with ErrIllegalMove and leaves the board untouched.
func ApplyMove(board *chess.Board, m chess.Move) error {
	legal, err := LegalMoves(board, board.ToMove)
	if err != nil {
		return err
	}
	if !slices.Contains(legal, m) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s for %v", m, board.ToMove)
	}
	makeMove(board, m)
	return nil
}

// UndoMove reverts the most recent move using its history entry. It fails
// with ErrNoHistory when no move has been applied.
func UndoMove(board *chess.Board) error {
	n := len(board.History)
	if n == 0 {
		return errors.ErrNoHistory
	}
	entry := board.History[n-1]
	board.History = board.History[:n-1]
	m := entry.Move

	board.Set(m.To, chess.NoPiece)
	if entry.Castle {
		board.Set(entry.RookTo, chess.NoPiece)
		board.Set(entry.RookFrom, chess.Piece{Kind: chess.Rook, Colour: entry.Moved.Colour})
	}
	board.Set(m.From, entry.Moved)
	if entry.IsCapture() {
		board.Set(entry.CapturedSquare, entry.Captured)
	}

	board.Castling = entry.Castling
	board.EnPassant = entry.EnPassant
	board.EPCol = entry.EPCol
	board.ToMove = entry.Moved.Colour
	return nil
}

// makeMove applies a pseudo-legal move without validating it, recording a
// history entry that UndoMove can invert.
func makeMove(board *chess.Board, m chess.Move) {
	moved := board.Get(m.From)
	colour := moved.Colour

	entry := chess.HistoryEntry{
		Move:           m,
		Moved:          moved,
		Captured:       board.Get(m.To),
		CapturedSquare: m.To,
		Castling:       board.Castling,
		EnPassant:      board.EnPassant,
		EPCol:          board.EPCol,
	}

	// En passant: a pawn moving diagonally onto an empty square takes the
	// pawn beside it.
	if moved.Kind == chess.Pawn && m.From.Col != m.To.Col && entry.Captured.IsEmpty() {
		entry.CapturedSquare = chess.Sq(m.From.Row, m.To.Col)
		entry.Captured = board.Get(entry.CapturedSquare)
		board.Set(entry.CapturedSquare, chess.NoPiece)
	}

	// Move the piece, promoting if asked
	placed := moved
	if m.IsPromotion() {
		placed = chess.Piece{Kind: m.Promotion, Colour: colour}
	}
	board.Set(m.From, chess.NoPiece)
	board.Set(m.To, placed)

	if isCastle(moved, m) {
		c := castleForMove(moved, m)
		entry.Castle = true
		entry.RookFrom = c.rookFrom
		entry.RookTo = c.rookTo
		board.Set(c.rookTo, board.Get(c.rookFrom))
		board.Set(c.rookFrom, chess.NoPiece)
	}

	// Castling rights
	switch moved.Kind {
	case chess.King:
		board.Castling.RevokeAll(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, m.From)
	}
	if entry.Captured.Kind == chess.Rook {
		updateCastlingRightsForRook(board, entry.Captured.Colour, entry.CapturedSquare)
	}

	board.ClearEnPassant()
	if isDoublePush(moved, m) {
		board.SetEnPassant(m.From.Col)
	}

	board.History = append(board.History, entry)
	board.ToMove = colour.Opposite()
}
