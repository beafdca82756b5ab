// Package engine implements the chess rules: pseudo-legal move generation,
// legality filtering, check detection, game status, move application with
// exact undo, and perft node counting.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// offset is a (row, column) step.
type offset [2]int

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([]offset{}, straightDirs...), diagonalDirs...)
)

// generator appends the pseudo-legal moves of the piece standing on from.
type generator func(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move

// generators is the one place move generation dispatches on piece kind.
var generators = [chess.NumPieceKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

func knightMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return stepMoves(board, from, piece, knightOffsets, moves)
}

func bishopMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(board, from, piece, diagonalDirs, moves)
}

func rookMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(board, from, piece, straightDirs, moves)
}

func queenMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(board, from, piece, queenDirs, moves)
}

func kingMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	moves = stepMoves(board, from, piece, kingOffsets, moves)
	return castlingMoves(board, from, piece, moves)
}

// stepMoves handles the fixed-offset pieces.
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets []offset, moves []chess.Move) []chess.Move {
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != piece.Colour {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slideMoves casts a ray along each direction until the edge or a blocker.
// An enemy blocker is included, a friendly one is not.
func slideMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs []offset, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(from, to))
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, chess.NewMove(from, to))
			}
			break // Blocked
		}
	}
	return moves
}

// PseudoMovesFrom returns the pseudo-legal moves of the piece on sq, ignoring
// whether they leave its own king attacked. An empty or off-board square
// has none.
func PseudoMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}
	return generators[piece.Kind](board, sq, piece, nil)
}

// PseudoMoves returns the pseudo-legal moves of every piece of the colour,
// ordered by source square (row-major from a1) and then generation order.
func PseudoMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	board.EachPiece(func(sq chess.Square, piece chess.Piece) {
		if piece.Colour == colour {
			moves = generators[piece.Kind](board, sq, piece, moves)
		}
	})
	return moves
}
