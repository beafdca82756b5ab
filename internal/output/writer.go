package output

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// BoardWriter renders a board as eight rows of piece symbols, rank 8 first.
type BoardWriter interface {
	WriteBoard(board *chess.Board) error
}

// PlainBoardWriter writes the bare symbol grid.
type PlainBoardWriter struct {
	w io.Writer
}

// NewPlainBoardWriter creates a writer without colour.
func NewPlainBoardWriter(w io.Writer) *PlainBoardWriter {
	return &PlainBoardWriter{w: w}
}

// WriteBoard writes the board.
func (pw *PlainBoardWriter) WriteBoard(board *chess.Board) error {
	_, err := io.WriteString(pw.w, board.String())
	return err
}

// ColourBoardWriter writes the same grid with White pieces, Black pieces
// and empty squares in distinct terminal colours.
type ColourBoardWriter struct {
	w     io.Writer
	white *color.Color
	black *color.Color
	empty *color.Color
}

// NewColourBoardWriter creates a colour writer. Colour is emitted whatever
// w is; NewBoardWriter picks this writer only for terminals.
func NewColourBoardWriter(w io.Writer) *ColourBoardWriter {
	cw := &ColourBoardWriter{
		w:     w,
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgHiRed, color.Bold),
		empty: color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{cw.white, cw.black, cw.empty} {
		c.EnableColor()
	}
	return cw
}

// WriteBoard writes the board.
func (cw *ColourBoardWriter) WriteBoard(board *chess.Board) error {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			sb.WriteString(cw.paint(piece).Sprint(string(piece.Symbol())))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(cw.w, sb.String())
	return err
}

func (cw *ColourBoardWriter) paint(piece chess.Piece) *color.Color {
	switch {
	case piece.IsEmpty():
		return cw.empty
	case piece.Colour == chess.White:
		return cw.white
	default:
		return cw.black
	}
}

// NewBoardWriter returns a colour writer when useColour is set and w is a
// terminal, and a plain writer otherwise.
func NewBoardWriter(w io.Writer, useColour bool) BoardWriter {
	if useColour && IsTerminal(w) {
		return NewColourBoardWriter(w)
	}
	return NewPlainBoardWriter(w)
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
