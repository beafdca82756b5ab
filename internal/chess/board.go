package chess

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CastlingRights holds the four independent castling flags. A flag only
// ever goes from true to false during play.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the state of the rights in the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether the colour may still castle on the given side.
func (c CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return c.WhiteKingside
	case colour == White:
		return c.WhiteQueenside
	case kingside:
		return c.BlackKingside
	default:
		return c.BlackQueenside
	}
}

// Revoke clears the right for one colour and side.
func (c *CastlingRights) Revoke(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		c.WhiteKingside = false
	case colour == White:
		c.WhiteQueenside = false
	case kingside:
		c.BlackKingside = false
	default:
		c.BlackQueenside = false
	}
}

// RevokeAll clears both rights of a colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	c.Revoke(colour, true)
	c.Revoke(colour, false)
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// squares[row][col]; row 0 is White's back rank.
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// Is en passant capture possible? If so then EPCol holds the column of
	// the pawn that just made a double step.
	EnPassant bool
	EPCol     int

	// Applied moves, oldest first.
	History []HistoryEntry
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

// Reset restores the standard starting position, grants all castling rights
// and clears en passant and history.
func (b *Board) Reset() {
	b.Clear()

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[BackRank(White)][col] = W(backRank[col])
		b.squares[PawnRank(White)][col] = W(Pawn)
		b.squares[PawnRank(Black)][col] = B(Pawn)
		b.squares[BackRank(Black)][col] = B(backRank[col])
	}
	b.Castling = AllCastlingRights
}

// Clear empties every square, drops all castling rights, en passant and
// history, and gives White the move.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Piece{}
	b.ToMove = White
	b.Castling = CastlingRights{}
	b.ClearEnPassant()
	b.History = nil
}

// CurrentTurn returns the colour to move.
func (b *Board) CurrentTurn() Colour {
	return b.ToMove
}

// PieceAt returns the piece on the square, failing with ErrOutOfRange when
// the square is off the board.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.Valid() {
		return NoPiece, errors.Wrapf(errors.ErrOutOfRange, "square (%d, %d)", sq.Row, sq.Col)
	}
	return b.squares[sq.Row][sq.Col], nil
}

// Get returns the piece on the square, or NoPiece when the square is off
// the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq.Row][sq.Col]
}

// SetPiece places a piece on the square, overwriting whatever was there.
func (b *Board) SetPiece(sq Square, piece Piece) error {
	if !sq.Valid() {
		return errors.Wrapf(errors.ErrOutOfRange, "square (%d, %d)", sq.Row, sq.Col)
	}
	b.squares[sq.Row][sq.Col] = piece
	return nil
}

// Set places a piece without checking the square. It is for squares taken
// from generated moves and history entries; sq must be on the board.
func (b *Board) Set(sq Square, piece Piece) {
	b.squares[sq.Row][sq.Col] = piece
}

// EnPassantColumn returns the en passant target column, if any.
func (b *Board) EnPassantColumn() (int, bool) {
	return b.EPCol, b.EnPassant
}

// SetEnPassant marks the column as the en passant target for the next ply.
func (b *Board) SetEnPassant(col int) {
	b.EnPassant = true
	b.EPCol = col
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPCol = 0
}

// EachPiece calls fn for every occupied square in row-major order.
func (b *Board) EachPiece(fn func(sq Square, piece Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// Copy creates a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.History = slices.Clone(b.History)
	return newBoard
}

// Equal reports whether two boards have the same piece placement, side to
// move, castling rights and en passant target. History is not compared.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.squares == other.squares &&
		b.ToMove == other.ToMove &&
		b.Castling == other.Castling &&
		b.EnPassant == other.EnPassant &&
		(!b.EnPassant || b.EPCol == other.EPCol)
}

// String renders the placement as eight lines of eight symbols, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.squares[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
