package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var (
	wK, wQ, wR, wB, wN, wP = chess.W(chess.King), chess.W(chess.Queen), chess.W(chess.Rook), chess.W(chess.Bishop), chess.W(chess.Knight), chess.W(chess.Pawn)
	bK, bQ, bR, bB, bN, bP = chess.B(chess.King), chess.B(chess.Queen), chess.B(chess.Rook), chess.B(chess.Bishop), chess.B(chess.Knight), chess.B(chess.Pawn)
)

// kiwipete builds the well-known castling/en passant stress position
// r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R, White to move.
func kiwipete(t testing.TB) *chess.Board {
	t.Helper()
	b := testutil.BoardWith(t, chess.White, testutil.Placement{
		"a8": bR, "e8": bK, "h8": bR,
		"a7": bP, "c7": bP, "d7": bP, "e7": bQ, "f7": bP, "g7": bB,
		"a6": bB, "b6": bN, "e6": bP, "f6": bN, "g6": bP,
		"d5": wP, "e5": wN,
		"b4": bP, "e4": wP,
		"c3": wN, "f3": wQ, "h3": bP,
		"a2": wP, "b2": wP, "c2": wP, "d2": wB, "e2": wB, "f2": wP, "g2": wP, "h2": wP,
		"a1": wR, "e1": wK, "h1": wR,
	})
	b.Castling = chess.AllCastlingRights
	return b
}

// endgamePins builds 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8, White to move.
func endgamePins(t testing.TB) *chess.Board {
	t.Helper()
	return testutil.BoardWith(t, chess.White, testutil.Placement{
		"c7": bP,
		"d6": bP,
		"a5": wK, "b5": wP, "h5": bR,
		"b4": wR, "f4": bP, "h4": bK,
		"e2": wP, "g2": wP,
	})
}

// playMoves applies coordinate moves in order, failing the test on the
// first illegal one.
func playMoves(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := ApplyMove(board, testutil.MustParseMove(t, text)); err != nil {
			t.Fatalf("ApplyMove(%s): %v", text, err)
		}
	}
}

func legalStrings(t testing.TB, board *chess.Board, colour chess.Colour) []string {
	t.Helper()
	moves, err := LegalMoves(board, colour)
	if err != nil {
		t.Fatalf("LegalMoves(%v): %v", colour, err)
	}
	return testutil.MoveStrings(moves)
}
