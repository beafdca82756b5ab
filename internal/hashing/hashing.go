// Package hashing provides Zobrist position keys and a cache of perft
// node counts keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed_c0de

// keyTable holds one random key per (colour, kind, square), side to move,
// castling right and en passant column.
type keyTable struct {
	pieces    [2][chess.NumPieceKinds][chess.BoardSize][chess.BoardSize]uint64
	blackMove uint64
	castling  [4]uint64
	epCol     [chess.BoardSize]uint64
}

var keys = newKeyTable(zobristSeed)

func newKeyTable(seed int64) *keyTable {
	rng := rand.New(rand.NewSource(seed))
	t := &keyTable{}
	for colour := range t.pieces {
		for kind := range t.pieces[colour] {
			for row := range t.pieces[colour][kind] {
				for col := range t.pieces[colour][kind][row] {
					t.pieces[colour][kind][row][col] = rng.Uint64()
				}
			}
		}
	}
	t.blackMove = rng.Uint64()
	for i := range t.castling {
		t.castling[i] = rng.Uint64()
	}
	for i := range t.epCol {
		t.epCol[i] = rng.Uint64()
	}
	return t
}

// GenerateZobristHash computes the Zobrist key of the position: piece
// placement, side to move, castling rights and en passant column. History
// does not contribute.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64

	board.EachPiece(func(sq chess.Square, piece chess.Piece) {
		hash ^= keys.pieces[piece.Colour][piece.Kind][sq.Row][sq.Col]
	})

	if board.ToMove == chess.Black {
		hash ^= keys.blackMove
	}

	rights := [4]bool{
		board.Castling.WhiteKingside,
		board.Castling.WhiteQueenside,
		board.Castling.BlackKingside,
		board.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= keys.castling[i]
		}
	}

	if col, ok := board.EnPassantColumn(); ok {
		hash ^= keys.epCol[col]
	}
	return hash
}
