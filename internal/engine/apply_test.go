package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// specialMoves has castling on both sides, an en passant capture and
// promotions with and without capture available to White.
func specialMoves(t testing.TB) *chess.Board {
	t.Helper()
	b := testutil.BoardWith(t, chess.Black, testutil.Placement{
		"e1": wK, "a1": wR, "h1": wR, "b7": wP, "e5": wP,
		"e8": bK, "a8": bR, "h8": bR, "d7": bP, "c8": bB,
	})
	b.Castling = chess.AllCastlingRights
	playMoves(t, b, "d7d5")
	return b
}

func TestApplyUndoRoundTrip(t *testing.T) {
	positions := map[string]func(testing.TB) *chess.Board{
		"initial":      func(testing.TB) *chess.Board { return chess.NewInitialBoard() },
		"special":      specialMoves,
		"kiwipete":     kiwipete,
		"endgame pins": endgamePins,
	}

	for name, build := range positions {
		t.Run(name, func(t *testing.T) {
			board := build(t)
			for _, m := range mustLegal(t, board, board.ToMove) {
				before := board.Copy()
				historyLen := len(board.History)

				testutil.AssertNoError(t, ApplyMove(board, m), m.String())
				testutil.AssertEqual(t, len(board.History), historyLen+1)
				testutil.AssertEqual(t, board.ToMove, before.ToMove.Opposite())

				testutil.AssertNoError(t, UndoMove(board), m.String())
				if !board.Equal(before) {
					t.Fatalf("%s: undo did not restore the position\nbefore:\n%s\nafter:\n%s", m, before, board)
				}
				testutil.AssertEqual(t, len(board.History), historyLen, m.String())
			}
		})
	}
}

func TestApplyMoveRejectsIllegal(t *testing.T) {
	tests := []struct {
		name  string
		board func(testing.TB) *chess.Board
		move  string
	}{
		{"not a move", func(testing.TB) *chess.Board { return chess.NewInitialBoard() }, "e2e5"},
		{"wrong side", func(testing.TB) *chess.Board { return chess.NewInitialBoard() }, "e7e5"},
		{"empty square", func(testing.TB) *chess.Board { return chess.NewInitialBoard() }, "e4e5"},
		{"promotion without a piece", specialMoves, "b7b8"},
		{"king promotion", specialMoves, "b7b8k"},
		{"pinned bishop", func(tb testing.TB) *chess.Board {
			return testutil.BoardWith(tb, chess.White, testutil.Placement{"e1": wK, "e2": wB, "e8": bR, "a8": bK})
		}, "e2d3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := tt.board(t)
			before := board.Copy()

			m, err := chess.ParseMove(tt.move)
			if err != nil {
				// The parser refuses a king promotion; build it directly.
				m = testutil.MustParseMove(t, tt.move[:4])
				m.Promotion = chess.King
			}

			err = ApplyMove(board, m)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertTrue(t, board.Equal(before), "board changed after rejected move")
			testutil.AssertEqual(t, len(board.History), len(before.History))
		})
	}
}

func TestUndoMoveEmptyHistory(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertErrorIs(t, UndoMove(board), errors.ErrNoHistory)

	playMoves(t, board, "e2e4")
	testutil.AssertNoError(t, UndoMove(board))
	testutil.AssertErrorIs(t, UndoMove(board), errors.ErrNoHistory)
	testutil.AssertTrue(t, board.Equal(chess.NewInitialBoard()))
}

func TestApplyCapture(t *testing.T) {
	board := chess.NewInitialBoard()
	playMoves(t, board, "e2e4", "d7d5", "e4d5")

	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "d5")), wP)
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "e4")), chess.NoPiece)

	last := board.History[len(board.History)-1]
	testutil.AssertTrue(t, last.IsCapture())
	testutil.AssertEqual(t, last.Captured, bP)

	testutil.AssertNoError(t, UndoMove(board))
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "d5")), bP)
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "e4")), wP)
}

func TestApplyEnPassant(t *testing.T) {
	board := specialMoves(t)
	before := board.Copy()

	playMoves(t, board, "e5d6")
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "d6")), wP)
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "d5")), chess.NoPiece, "captured pawn removed")
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "e5")), chess.NoPiece)
	testutil.AssertFalse(t, board.EnPassant)

	last := board.History[len(board.History)-1]
	testutil.AssertEqual(t, last.CapturedSquare, testutil.MustSquare(t, "d5"))

	testutil.AssertNoError(t, UndoMove(board))
	testutil.AssertTrue(t, board.Equal(before))
	col, ok := board.EnPassantColumn()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, col, 3)
}

func TestApplyDoublePushSetsEnPassant(t *testing.T) {
	board := chess.NewInitialBoard()
	playMoves(t, board, "e2e4")
	col, ok := board.EnPassantColumn()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, col, 4)

	playMoves(t, board, "g8f6")
	testutil.AssertFalse(t, board.EnPassant)
}

func TestApplyCastling(t *testing.T) {
	tests := []struct {
		move     string
		king     string
		rookFrom string
		rookTo   string
	}{
		{"e1g1", "g1", "h1", "f1"},
		{"e1c1", "c1", "a1", "d1"},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			board := specialMoves(t)
			board.ClearEnPassant()
			before := board.Copy()

			playMoves(t, board, tt.move)
			testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, tt.king)), wK)
			testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, tt.rookTo)), wR)
			testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, tt.rookFrom)), chess.NoPiece)
			testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "e1")), chess.NoPiece)
			testutil.AssertFalse(t, board.Castling.WhiteKingside)
			testutil.AssertFalse(t, board.Castling.WhiteQueenside)
			testutil.AssertTrue(t, board.Castling.BlackKingside)

			testutil.AssertNoError(t, UndoMove(board))
			testutil.AssertTrue(t, board.Equal(before), "undo %s", tt.move)
		})
	}
}

func TestCastlingRightsRevocation(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  chess.CastlingRights
	}{
		{
			name:  "king move revokes both",
			moves: []string{"e1e2"},
			want:  chess.CastlingRights{BlackKingside: true, BlackQueenside: true},
		},
		{
			name:  "kingside rook move",
			moves: []string{"h1h2"},
			want:  chess.CastlingRights{WhiteQueenside: true, BlackKingside: true, BlackQueenside: true},
		},
		{
			name:  "rook captured on its home square",
			moves: []string{"a1a8"},
			want:  chess.CastlingRights{WhiteKingside: true, BlackKingside: true},
		},
		{
			name:  "king returning home does not restore rights",
			moves: []string{"e1e2", "e8e7", "e2e1", "e7e8"},
			want:  chess.CastlingRights{},
		},
		{
			name:  "rook returning home does not restore rights",
			moves: []string{"h1h2", "h8h7", "h2h1", "h7h8"},
			want:  chess.CastlingRights{WhiteQueenside: true, BlackQueenside: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(t, chess.White, testutil.Placement{
				"e1": wK, "a1": wR, "h1": wR, "e8": bK, "a8": bR, "h8": bR,
			})
			board.Castling = chess.AllCastlingRights
			playMoves(t, board, tt.moves...)
			testutil.AssertEqual(t, board.Castling, tt.want)

			for range tt.moves {
				testutil.AssertNoError(t, UndoMove(board))
			}
			testutil.AssertEqual(t, board.Castling, chess.AllCastlingRights)
		})
	}
}

func TestApplyPromotion(t *testing.T) {
	for _, kind := range chess.PromotionKinds {
		t.Run(kind.String(), func(t *testing.T) {
			board := specialMoves(t)
			before := board.Copy()

			m := chess.Move{From: testutil.MustSquare(t, "b7"), To: testutil.MustSquare(t, "c8"), Promotion: kind}
			testutil.AssertNoError(t, ApplyMove(board, m))
			testutil.AssertEqual(t, board.Get(m.To), chess.W(kind))
			testutil.AssertEqual(t, board.Get(m.From), chess.NoPiece)

			testutil.AssertNoError(t, UndoMove(board))
			testutil.AssertTrue(t, board.Equal(before))
			testutil.AssertEqual(t, board.Get(m.To), bB, "captured bishop restored")
			testutil.AssertEqual(t, board.Get(m.From), wP, "pawn restored")
		})
	}
}

func TestUndoSequenceToStart(t *testing.T) {
	board := chess.NewInitialBoard()
	moves := []string{"e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "c7c6", "d5c6", "d8d2", "b1d2", "e8d8", "g1f3", "b8c6", "e1g1"}
	playMoves(t, board, moves...)
	testutil.AssertEqual(t, len(board.History), len(moves))

	for range moves {
		testutil.AssertNoError(t, UndoMove(board))
	}
	testutil.AssertTrue(t, board.Equal(chess.NewInitialBoard()))
	testutil.AssertEqual(t, len(board.History), 0)
}
