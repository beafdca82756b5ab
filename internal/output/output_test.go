package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestOutputWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, word := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		ow.Write(word)
	}
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "e2e4 e7e5\ng1f3 b8c6\n")
}

func TestOutputWriterNewLineOnlyOnce(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 0)
	ow.NewLine()
	ow.Write("a")
	ow.NewLine()
	ow.NewLine()
	testutil.AssertEqual(t, buf.String(), "a\n")
}

func TestWriteMoves(t *testing.T) {
	tests := []struct {
		name  string
		moves []chess.Move
		width int
		want  string
	}{
		{"empty", nil, 80, "(none)\n"},
		{
			"promotion",
			[]chess.Move{{From: chess.Sq(6, 0), To: chess.Sq(7, 0), Promotion: chess.Queen}},
			80,
			"a7a8q\n",
		},
		{
			"wrapped",
			[]chess.Move{
				chess.NewMove(chess.Sq(1, 4), chess.Sq(3, 4)),
				chess.NewMove(chess.Sq(1, 3), chess.Sq(3, 3)),
				chess.NewMove(chess.Sq(0, 6), chess.Sq(2, 5)),
			},
			9,
			"e2e4 d2d4\ng1f3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			WriteMoves(&buf, tt.moves, tt.width)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteStatus(t *testing.T) {
	var buf bytes.Buffer
	WriteStatus(&buf, chess.Black, engine.Checkmate)
	testutil.AssertEqual(t, buf.String(), "Black to move: Checkmate\n")
}

func TestWriteDivide(t *testing.T) {
	results := []engine.DivideResult{
		{Move: chess.NewMove(chess.Sq(1, 4), chess.Sq(3, 4)), Nodes: 600},
		{Move: chess.NewMove(chess.Sq(0, 6), chess.Sq(2, 5)), Nodes: 440},
	}
	var buf bytes.Buffer
	WriteDivide(&buf, results)
	testutil.AssertEqual(t, buf.String(), "e2e4: 600\ng1f3: 440\n\nNodes searched: 1040\n")
}

func TestPlainBoardWriter(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewBoardWriter(&buf, false).WriteBoard(chess.NewInitialBoard()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 8)
	testutil.AssertEqual(t, lines[0], "rnbqkbnr")
	testutil.AssertEqual(t, lines[3], "........")
	testutil.AssertEqual(t, lines[7], "RNBQKBNR")
}

func TestColourBoardWriter(t *testing.T) {
	board := chess.NewBoard()
	_ = board.SetPiece(chess.Sq(7, 0), chess.B(chess.King))
	_ = board.SetPiece(chess.Sq(0, 7), chess.W(chess.King))

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewColourBoardWriter(&buf).WriteBoard(board))
	out := buf.String()

	testutil.AssertContains(t, out, "\x1b[")
	testutil.AssertContains(t, out, "k")
	testutil.AssertContains(t, out, "K")
	testutil.AssertEqual(t, strings.Count(out, "\n"), 8)

	// Stripping the escape sequences leaves the plain grid.
	var plain bytes.Buffer
	testutil.AssertNoError(t, NewPlainBoardWriter(&plain).WriteBoard(board))
	testutil.AssertEqual(t, stripANSI(out), plain.String())
}

func TestNewBoardWriter(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	testutil.AssertNoError(t, err)
	defer devNull.Close()

	tests := []struct {
		name      string
		w         io.Writer
		useColour bool
	}{
		{"buffer with colour requested", &bytes.Buffer{}, true},
		{"buffer without colour", &bytes.Buffer{}, false},
		{"non-terminal file with colour requested", devNull, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertFalse(t, IsTerminal(tt.w))
			if _, ok := NewBoardWriter(tt.w, tt.useColour).(*PlainBoardWriter); !ok {
				t.Errorf("NewBoardWriter(%T, %v) is not plain", tt.w, tt.useColour)
			}
		})
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewBoardWriter(&buf, true).WriteBoard(chess.NewInitialBoard()))
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("escape codes written to a buffer:\n%q", buf.String())
	}
}

func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
