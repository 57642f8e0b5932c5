package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PlayerKind selects how a side chooses its moves.
type PlayerKind int

const (
	HumanPlayer  PlayerKind = iota // Reads moves from the input stream
	RandomPlayer                   // Picks a random legal move
)

func (k PlayerKind) String() string {
	switch k {
	case HumanPlayer:
		return "human"
	case RandomPlayer:
		return "random"
	}
	return fmt.Sprintf("PlayerKind(%d)", int(k))
}

// ParsePlayerKind parses "human" or "random".
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(s) {
	case "human":
		return HumanPlayer, nil
	case "random":
		return RandomPlayer, nil
	}
	return 0, fmt.Errorf("unknown player %q (want human or random): %w", s, errors.ErrInvalidConfig)
}

// PlayerConfig holds settings for the two sides.
type PlayerConfig struct {
	White PlayerKind
	Black PlayerKind

	// Seed drives the random players. Black uses Seed+1 so the two sides
	// do not mirror each other.
	Seed int64
}

// NewPlayerConfig creates a PlayerConfig with a human playing White
// against a random Black.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		White: HumanPlayer,
		Black: RandomPlayer,
		Seed:  1,
	}
}

// Validate checks that both player kinds are known.
func (p *PlayerConfig) Validate() error {
	for _, k := range []PlayerKind{p.White, p.Black} {
		if k != HumanPlayer && k != RandomPlayer {
			return fmt.Errorf("invalid player kind %v: %w", k, errors.ErrInvalidConfig)
		}
	}
	return nil
}
