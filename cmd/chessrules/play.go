package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/player"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// startingBoard returns the configured starting position.
func startingBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.Limits.StartFEN == "" {
		return chess.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(cfg.Limits.StartFEN)
}

// newSource creates the move source for one side.
func newSource(cfg *config.Config, kind config.PlayerKind, seed int64) game.InputSource {
	if kind == config.RandomPlayer {
		return player.NewRandom(seed)
	}
	return player.NewHuman(cfg.InputFile, cfg.OutputFile)
}

// playGame plays one game as configured and reports how it ended.
func playGame(cfg *config.Config) (game.Outcome, error) {
	board, err := startingBoard(cfg)
	if err != nil {
		return game.Outcome{}, err
	}
	ctrl, err := game.NewControllerFromBoard(board, game.WithLog(cfg.LogFile, cfg.Verbosity))
	if err != nil {
		return game.Outcome{}, err
	}

	out := cfg.OutputFile
	renderer := render.New(cfg.Display.Flip, cfg.Display.Index, cfg.Display.Colour)

	white := newSource(cfg, cfg.Players.White, cfg.Players.Seed)
	var black game.InputSource
	if cfg.Players.White == config.HumanPlayer && cfg.Players.Black == config.HumanPlayer {
		// Two scanners over one reader would each read ahead.
		black = white
	} else {
		black = newSource(cfg, cfg.Players.Black, cfg.Players.Seed+1)
	}

	fmt.Fprintf(out, "Game %s: White (%v) vs Black (%v)\n", cfg.GameName, cfg.Players.White, cfg.Players.Black)
	if cfg.Display.ShowBoard {
		if err := showPosition(out, ctrl, renderer, cfg.Display.ShowCaptured); err != nil {
			return game.Outcome{}, errors.Wrap(err, "drawing board")
		}
	}

	// First failed board write; the game still runs to its end.
	var displayErr error
	observer := func(c *game.Controller, m chess.Move) {
		fmt.Fprintf(out, "%d. %v plays %v\n", c.Ply(), c.ToMove().Opposite(), m)
		if cfg.Display.ShowBoard && displayErr == nil {
			displayErr = showPosition(out, c, renderer, cfg.Display.ShowCaptured)
		}
	}
	onReject := func(side chess.Colour, m chess.Move, err error) {
		fmt.Fprintf(out, "%v: %v\n", side, err)
	}

	outcome, err := game.Run(ctrl, white, black,
		game.WithMaxPlies(cfg.Limits.MaxPlies),
		game.WithDeadPositionStop(cfg.Limits.StopOnDeadPosition),
		game.WithMaxRejections(cfg.Limits.MaxRejections),
		game.WithObserver(observer),
		game.WithRejectHandler(onReject))

	reportOutcome(cfg, outcome)
	if err == nil && displayErr != nil {
		err = errors.Wrap(displayErr, "drawing board")
	}
	return outcome, err
}

// showPosition draws the board with the side to move and, optionally,
// the captured pieces.
func showPosition(w io.Writer, c *game.Controller, r *render.Renderer, captured bool) error {
	if err := r.Render(w, c.Board()); err != nil {
		return err
	}
	if captured {
		if err := render.RenderCaptured(w, c.Captured(chess.White), c.Captured(chess.Black)); err != nil {
			return err
		}
	}
	if !c.State().IsTerminal() {
		if _, err := fmt.Fprintln(w, render.StatusLine(c.ToMove(), c.InCheck())); err != nil {
			return err
		}
	}
	return nil
}

// reportOutcome prints the final result. Games stopped before a terminal
// state are also logged, since the controller only logs terminal results.
func reportOutcome(cfg *config.Config, outcome game.Outcome) {
	if outcome.Reason == game.Finished {
		fmt.Fprintf(cfg.OutputFile, "Result: %v\n", outcome.Result)
		return
	}
	fmt.Fprintf(cfg.OutputFile, "Game stopped: %v after %d plies\n", outcome.Reason, outcome.Plies)
	if cfg.Verbosity > 0 && cfg.LogFile != nil {
		fmt.Fprintf(cfg.LogFile, "%s: %v after %d plies\n", cfg.GameName, outcome.Reason, outcome.Plies)
	}
}

// runPerft prints the node count below every root move and the total.
func runPerft(cfg *config.Config) error {
	board, err := startingBoard(cfg)
	if err != nil {
		return err
	}
	entries := engine.PerftDivide(board, cfg.Perft.Depth, cfg.Perft.Workers)
	for _, e := range entries {
		fmt.Fprintf(cfg.OutputFile, "%v: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", engine.TotalNodes(entries))
	return nil
}
