// chessmoves plays coordinate moves from the initial chess position and
// reports the resulting board, game status, legal moves and perft counts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmoves version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg, flag.Args())

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	ctx := &ProcessingContext{
		cfg:    cfg,
		logger: newLogger(cfg),
	}

	if err := run(ctx); err != nil {
		ctx.logger.Printf("%v", err)
		closeOutput()
		closeLog()
		os.Exit(1)
	}
}

// newLogger returns the diagnostics logger. Verbosity 0 discards everything.
func newLogger(cfg *config.Config) *log.Logger {
	w := cfg.LogFile
	if cfg.Verbosity == 0 || w == nil {
		w = io.Discard
	}
	return log.New(w, "chessmoves: ", 0)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) func() {
	if cfg.LogFilename == "" {
		return func() {}
	}

	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if cfg.OutputFilename == "" {
		return func() {}
	}

	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmoves [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves such as e2e4 or e7e8q from the initial position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status:\n")
	fmt.Fprintf(os.Stderr, "  0  success\n")
	fmt.Fprintf(os.Stderr, "  1  a move could not be parsed, played or taken back\n")
	fmt.Fprintf(os.Stderr, "  2  invalid options\n")
}
