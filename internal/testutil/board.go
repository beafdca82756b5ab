package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Placement maps algebraic square names ("e1") to the piece standing there.
type Placement map[string]chess.Piece

// BoardWith returns an empty board with the given pieces placed, toMove to
// move and no castling rights or en passant target.
func BoardWith(t testing.TB, toMove chess.Colour, pieces Placement) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for name, piece := range pieces {
		if err := b.SetPiece(MustSquare(t, name), piece); err != nil {
			t.Fatalf("SetPiece(%s): %v", name, err)
		}
	}
	b.ToMove = toMove
	return b
}

// MustSquare parses an algebraic square name or fails the test.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustParseMove parses coordinate move text or fails the test.
func MustParseMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

// MoveStrings returns the coordinate text of each move, sorted, so move
// sets can be compared regardless of generation order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// AssertMoveSet compares two move lists as sets of coordinate strings.
func AssertMoveSet(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := append([]string{}, want...)
	sort.Strings(sorted)
	AssertEqual(t, MoveStrings(got), sorted, msgAndArgs...)
}

// AssertMovesMatch compares two sorted lists of coordinate strings and
// reports whether they are equal, so loops can stop at the first mismatch.
func AssertMovesMatch(t *testing.T, got, want []string, msgAndArgs ...interface{}) bool {
	t.Helper()
	diff := cmp.Diff(want, got, cmpopts.EquateEmpty())
	if diff != "" {
		fail(t, msgAndArgs, "move set mismatch (-want +got):\n%s", diff)
	}
	return diff == ""
}
