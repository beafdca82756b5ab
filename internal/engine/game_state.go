package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status classifies a position for the side to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further moves exist for the side to move.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Classify maps the legal-move count and check flag to a status.
func Classify(legalCount int, inCheck bool) Status {
	switch {
	case legalCount > 0 && !inCheck:
		return Normal
	case legalCount > 0:
		return Check
	case inCheck:
		return Checkmate
	default:
		return Stalemate
	}
}

// Evaluate classifies the position for the side to move.
func Evaluate(board *chess.Board) (Status, error) {
	return EvaluateFor(board, board.ToMove)
}

// EvaluateFor classifies the position as if the colour were to move.
func EvaluateFor(board *chess.Board, colour chess.Colour) (Status, error) {
	moves, err := LegalMoves(board, colour)
	if err != nil {
		return Normal, err
	}
	inCheck, err := IsInCheck(board, colour)
	if err != nil {
		return Normal, err
	}
	return Classify(len(moves), inCheck), nil
}
