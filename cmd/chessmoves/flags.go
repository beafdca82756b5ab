// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")
	noColour   = flag.Bool("nocolour", false, "Print the board without terminal colours")
	noBoard    = flag.Bool("noboard", false, "Don't print the board")
	noMoves    = flag.Bool("nomoves", false, "Don't list the legal moves")

	// Move options
	moveList  = flag.String("m", "", "Moves to play from the initial position (e.g. 'e2e4 e7e5')")
	undoCount = flag.Int("u", 0, "Take back the last N moves after playing them")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth, divided by root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose = flag.Bool("verbose", false, "Log every move as it is played")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Positional
// arguments are appended to the -m move list.
func applyFlags(cfg *config.Config, args []string) {
	applyOutputFlags(cfg)
	applyMoveFlags(cfg, args)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.MaxLineLength = *lineLength
	cfg.Output.UseColour = !*noColour
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowLegalMoves = !*noMoves
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
}

// applyMoveFlags configures the moves to play and take back.
func applyMoveFlags(cfg *config.Config, args []string) {
	moves := splitMoves(*moveList)
	for _, arg := range args {
		moves = append(moves, splitMoves(arg)...)
	}
	cfg.Moves = moves
	cfg.Undo = *undoCount
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// splitMoves splits a move list on whitespace and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
