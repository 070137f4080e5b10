// Package config provides configuration for the rules engine and its
// batch replay front end.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Verbosity levels understood by Logf.
const (
	Silent      = 0 // nothing
	Transitions = 1 // check, checkmate and stalemate transitions
	Moves       = 2 // every accepted and rejected move
)

// Config holds engine configuration.
type Config struct {
	// Verbosity selects how much is written to LogFile (Silent..Moves).
	Verbosity int

	// LogFile receives running commentary.
	LogFile io.Writer

	// KingSafety rejects moves that leave the mover's own king attacked.
	// Off by default: the move pipeline then validates piece geometry only.
	KingSafety bool

	// Replay holds settings for batch game replay.
	Replay *ReplayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: Silent,
		LogFile:   os.Stderr,
		Replay:    NewReplayConfig(),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Moves {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w",
			c.Verbosity, Silent, Moves, errors.ErrInvalidConfig)
	}
	if c.Verbosity > Silent && c.LogFile == nil {
		return fmt.Errorf("verbosity %d with no log file: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Replay != nil {
		return c.Replay.Validate()
	}
	return nil
}

// Logf writes to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
