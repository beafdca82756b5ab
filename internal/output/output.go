// Package output renders boards, move lists and perft tables for the
// command line.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter writes space separated words, wrapping lines at a maximum
// length.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything has been written to it.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 && !o.needsSpace {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoves writes the moves in coordinate form, wrapped at maxLineLength.
// An empty list is written as "(none)".
func WriteMoves(w io.Writer, moves []chess.Move, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	if len(moves) == 0 {
		ow.Write("(none)")
	}
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}

// WriteStatus writes a one-line summary such as "White to move: Check".
func WriteStatus(w io.Writer, colour chess.Colour, status engine.Status) {
	fmt.Fprintf(w, "%v to move: %v\n", colour, status)
}

// WriteDivide writes one "move: nodes" line per root move followed by the
// total.
func WriteDivide(w io.Writer, results []engine.DivideResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", engine.TotalNodes(results))
}
