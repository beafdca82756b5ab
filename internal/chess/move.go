package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move represents a single move from one square to another. Promotion is
// None unless a pawn reaches its last rank. Moves compare with ==.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsPromotion returns true if this move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promotion != None
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(Piece{Kind: m.Promotion, Colour: Black}.Symbol())
	}
	return sb.String()
}

// ParseMove converts coordinate text ("e2e4", "e7e8q") into a Move.
// It checks only the syntax; legality is the engine's concern.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "move %q", text)
	}

	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, err
	}

	move := Move{From: from, To: to}
	if len(text) == 5 {
		kind, ok := promotionLetters[text[4]]
		if !ok {
			return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "promotion piece in %q", text)
		}
		move.Promotion = kind
	}
	return move, nil
}

var promotionLetters = map[byte]PieceKind{
	'q': Queen, 'Q': Queen,
	'r': Rook, 'R': Rook,
	'b': Bishop, 'B': Bishop,
	'n': Knight, 'N': Knight,
}

// HistoryEntry records an applied move together with the pre-move state
// needed to invert it exactly.
type HistoryEntry struct {
	Move Move

	// The piece that stood on Move.From before the move.
	Moved Piece

	// The piece removed by the move (NoPiece if none) and where it stood.
	// For en passant the square differs from Move.To.
	Captured       Piece
	CapturedSquare Square

	// Rook relocation for castling moves.
	Castle   bool
	RookFrom Square
	RookTo   Square

	// State before the move.
	Castling  CastlingRights
	EnPassant bool
	EPCol     int
}

// IsCapture returns true if the recorded move removed a piece.
func (h HistoryEntry) IsCapture() bool {
	return !h.Captured.IsEmpty()
}
