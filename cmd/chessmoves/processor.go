// processor.go - Move playing and report output
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg    *config.Config
	logger *log.Logger
}

// run plays the configured moves, takes back the requested number of them
// and writes the report for the resulting position.
func run(ctx *ProcessingContext) error {
	board := chess.NewInitialBoard()

	if err := playMoves(ctx, board, ctx.cfg.Moves); err != nil {
		return err
	}
	if err := undoMoves(ctx, board, ctx.cfg.Undo); err != nil {
		return err
	}
	if err := reportPosition(ctx.cfg, board); err != nil {
		return err
	}
	if ctx.cfg.Perft.Depth > 0 {
		return runPerft(ctx, board)
	}
	return nil
}

// playMoves parses and applies each move in turn. The first failure is
// returned as a *errors.MoveError naming the ply and the move text.
func playMoves(ctx *ProcessingContext, board *chess.Board, moves []string) error {
	for i, text := range moves {
		ply := i + 1
		m, err := chess.ParseMove(text)
		if err != nil {
			return &errors.MoveError{Err: err, Ply: ply, MoveText: text}
		}
		if err := engine.ApplyMove(board, m); err != nil {
			return &errors.MoveError{Err: err, Ply: ply, MoveText: text}
		}
		if ctx.cfg.Verbosity > 1 {
			ctx.logger.Printf("ply %d: %s", ply, m)
		}
	}
	return nil
}

// undoMoves takes back the last n applied moves.
func undoMoves(ctx *ProcessingContext, board *chess.Board, n int) error {
	for i := 0; i < n; i++ {
		if err := engine.UndoMove(board); err != nil {
			return errors.Wrapf(err, "undo %d of %d", i+1, n)
		}
		if ctx.cfg.Verbosity > 1 {
			ctx.logger.Printf("took back ply %d", len(board.History)+1)
		}
	}
	return nil
}

// reportPosition writes the board, the status of the side to move and its
// legal moves, as enabled in the output configuration.
func reportPosition(cfg *config.Config, board *chess.Board) error {
	if cfg.Output.ShowBoard {
		bw := output.NewBoardWriter(cfg.OutputFile, cfg.Output.UseColour)
		if err := bw.WriteBoard(board); err != nil {
			return err
		}
	}

	status, err := engine.Evaluate(board)
	if err != nil {
		return err
	}
	output.WriteStatus(cfg.OutputFile, board.ToMove, status)

	if cfg.Output.ShowLegalMoves {
		moves, err := engine.LegalMoves(board, board.ToMove)
		if err != nil {
			return err
		}
		output.WriteMoves(cfg.OutputFile, moves, cfg.Output.MaxLineLength)
	}
	return nil
}

// runPerft writes the divided node counts for the configured depth.
func runPerft(ctx *ProcessingContext, board *chess.Board) error {
	start := time.Now()
	results, err := engine.DivideParallel(board, ctx.cfg.Perft.Depth, ctx.cfg.Perft.Workers)
	if err != nil {
		return errors.Wrapf(err, "perft depth %d", ctx.cfg.Perft.Depth)
	}

	fmt.Fprintln(ctx.cfg.OutputFile)
	output.WriteDivide(ctx.cfg.OutputFile, results)

	if ctx.cfg.Verbosity > 0 {
		ctx.logger.Printf("perft(%d) with %d workers took %v",
			ctx.cfg.Perft.Depth, ctx.cfg.Perft.Workers, time.Since(start).Round(time.Millisecond))
	}
	return nil
}
