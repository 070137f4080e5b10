package config

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// ReplayConfig holds settings for replaying batches of games.
type ReplayConfig struct {
	// Workers is the number of games replayed concurrently.
	Workers int

	// BufferSize is the capacity of the work and result channels.
	BufferSize int

	// StopOnError abandons the remaining games after the first failure.
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) < 1: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
