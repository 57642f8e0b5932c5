// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Players
	whitePlayer = flag.String("white", "human", "Who plays White: human or random")
	blackPlayer = flag.String("black", "random", "Who plays Black: human or random")
	seed        = flag.Int64("seed", 1, "Seed for random players")

	// Game setup and limits
	startFEN   = flag.String("fen", "", "Start from this FEN position")
	maxPly     = flag.Int("maxply", 0, "Stop the game after N plies (0 = no limit)")
	stopDead   = flag.Bool("stopdead", false, "Stop the game when neither side can mate")
	maxRejects = flag.Int("maxrejects", 0, "Give up after N illegal moves in a row (0 = no limit)")
	gameName   = flag.String("name", "", "Game name (default: a random name)")

	// Display
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")
	showIndex    = flag.Bool("index", true, "Print file and rank indices")
	useColour    = flag.Bool("colour", false, "Paint square backgrounds")
	quiet        = flag.Bool("quiet", false, "Don't draw the board after each move")
	hideCaptured = flag.Bool("nocaptured", false, "Don't print captured pieces")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move tree nodes to depth N instead of playing")
	workers    = flag.Int("workers", 1, "Workers for -perft")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 result, 2 every ply")
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")

	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	applyLimitFlags(cfg)
	applyDisplayFlags(cfg)

	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *workers
	cfg.Verbosity = *verbosity

	cfg.GameName = *gameName
	if cfg.GameName == "" {
		cfg.GameName = petname.Generate(2, "-")
	}

	return cfg.Validate()
}

// applyPlayerFlags configures who plays each side.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Players.White = white
	cfg.Players.Black = black
	cfg.Players.Seed = *seed
	return nil
}

// applyLimitFlags configures the starting position and game limits.
func applyLimitFlags(cfg *config.Config) {
	cfg.Limits.StartFEN = *startFEN
	cfg.Limits.MaxPlies = *maxPly
	cfg.Limits.StopOnDeadPosition = *stopDead
	cfg.Limits.MaxRejections = *maxRejects
}

// applyDisplayFlags configures board display.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Flip = *flipBoard
	cfg.Display.Index = *showIndex
	cfg.Display.Colour = *useColour
	cfg.Display.ShowBoard = !*quiet
	cfg.Display.ShowCaptured = !*hideCaptured
}
