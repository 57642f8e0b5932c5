// Package config provides configuration for chessrules.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// 0=nothing, 1=game result, 2=running commentary of every ply
	Verbosity int

	// GameName labels the game in output and logs.
	GameName string

	Players PlayerConfig
	Display DisplayConfig
	Limits  LimitConfig
	Perft   PerftConfig

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// PerftConfig selects perft mode instead of playing a game.
type PerftConfig struct {
	// Depth of the count; 0 plays a game instead.
	Depth int
	// Workers spread the root moves when dividing.
	Workers int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Players:    *NewPlayerConfig(),
		Display:    *NewDisplayConfig(),
		Limits:     *NewLimitConfig(),
		Perft:      PerftConfig{Workers: 1},
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Players.Validate(); err != nil {
		return err
	}
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
