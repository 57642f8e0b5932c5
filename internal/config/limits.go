package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LimitConfig holds settings that bound a game.
type LimitConfig struct {
	// StartFEN sets up the starting position; empty means the standard
	// initial layout.
	StartFEN string

	// MaxPlies ends the game unfinished after this many plies (0 = no limit)
	MaxPlies int

	// StopOnDeadPosition ends the game unfinished when neither side can mate
	StopOnDeadPosition bool

	// MaxRejections gives up after this many illegal moves in a row (0 = no limit)
	MaxRejections int
}

// NewLimitConfig creates a LimitConfig with default values.
// Games run until a terminal state by default.
func NewLimitConfig() *LimitConfig {
	return &LimitConfig{}
}

// Validate checks that the limits are usable.
func (l *LimitConfig) Validate() error {
	if l.MaxPlies < 0 {
		return fmt.Errorf("ply limit %d is negative: %w", l.MaxPlies, errors.ErrInvalidConfig)
	}
	if l.MaxRejections < 0 {
		return fmt.Errorf("rejection limit %d is negative: %w", l.MaxRejections, errors.ErrInvalidConfig)
	}
	return nil
}

// Validate checks the perft depth and worker count.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count %d must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
