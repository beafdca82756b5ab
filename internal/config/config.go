// Package config provides configuration for the chessmoves command.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Moves to apply from the initial position, in coordinate form.
	Moves []string

	// Number of moves to take back after applying Moves.
	Undo int

	Output *OutputConfig
	Perft  *PerftConfig

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate reports settings that cannot be acted on.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	case c.Undo < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "undo count %d", c.Undo)
	case c.Undo > len(c.Moves):
		return errors.Wrapf(errors.ErrInvalidConfig, "cannot undo %d of %d moves", c.Undo, len(c.Moves))
	case c.Perft.Depth < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", c.Perft.Depth)
	case c.Perft.Workers < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "worker count %d", c.Perft.Workers)
	}
	return nil
}

// DefaultWorkers is the perft worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.NumCPU()
}
