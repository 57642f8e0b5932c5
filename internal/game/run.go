package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InputSource supplies moves for one side. The board is a snapshot of
// the current position; legal is never empty.
type InputSource interface {
	NextMove(board *chess.Board, legal []chess.Move) (chess.Move, error)
}

// StopReason says why Run returned.
type StopReason int

const (
	// Finished means the game reached a terminal state.
	Finished StopReason = iota
	// PlyLimit means the configured ply limit was reached first.
	PlyLimit
	// DeadPosition means neither side had mating material left.
	DeadPosition
	// SourceFailed means an input source returned an error.
	SourceFailed
)

func (r StopReason) String() string {
	switch r {
	case Finished:
		return "finished"
	case PlyLimit:
		return "ply limit reached"
	case DeadPosition:
		return "insufficient material"
	case SourceFailed:
		return "input ended"
	}
	return "unknown"
}

// Outcome is what Run reports when it returns.
type Outcome struct {
	Result Result
	Reason StopReason
	Plies  int
}

// Observer is called after every applied move.
type Observer func(c *Controller, m chess.Move)

// RejectHandler is called when a source returns a move that is not legal.
type RejectHandler func(side chess.Colour, m chess.Move, err error)

type runOptions struct {
	maxPlies      int
	stopOnDead    bool
	maxRejections int
	observer      Observer
	onReject      RejectHandler
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithMaxPlies stops the loop after n plies. Zero means no limit.
func WithMaxPlies(n int) RunOption {
	return func(o *runOptions) { o.maxPlies = n }
}

// WithDeadPositionStop stops the loop once neither side can mate.
func WithDeadPositionStop(stop bool) RunOption {
	return func(o *runOptions) { o.stopOnDead = stop }
}

// WithMaxRejections bounds how many illegal moves in a row a source may
// return before Run gives up. Zero means no limit.
func WithMaxRejections(n int) RunOption {
	return func(o *runOptions) { o.maxRejections = n }
}

// WithObserver registers a callback for every applied move.
func WithObserver(fn Observer) RunOption {
	return func(o *runOptions) { o.observer = fn }
}

// WithRejectHandler registers a callback for every rejected move.
func WithRejectHandler(fn RejectHandler) RunOption {
	return func(o *runOptions) { o.onReject = fn }
}

// Run asks white and black for moves in turn until the game ends. An
// illegal move is reported to the reject handler and asked for again.
// A source error stops the loop and is returned alongside the outcome.
func Run(c *Controller, white, black InputSource, opts ...RunOption) (Outcome, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	rejections := 0
	for !c.State().IsTerminal() {
		if o.maxPlies > 0 && c.Ply() >= o.maxPlies {
			return c.outcome(PlyLimit), nil
		}
		if o.stopOnDead && engine.HasInsufficientMaterial(c.board) {
			return c.outcome(DeadPosition), nil
		}

		side := c.ToMove()
		source := white
		if side == chess.Black {
			source = black
		}

		m, err := source.NextMove(c.Board(), c.LegalMoves())
		if err != nil {
			return c.outcome(SourceFailed), err
		}

		if err := c.Submit(m); err != nil {
			if !errors.Is(err, errors.ErrInvalidMove) {
				return c.outcome(SourceFailed), err
			}
			if o.onReject != nil {
				o.onReject(side, m, err)
			}
			rejections++
			if o.maxRejections > 0 && rejections >= o.maxRejections {
				return c.outcome(SourceFailed), err
			}
			continue
		}
		rejections = 0

		if o.observer != nil {
			o.observer(c, m)
		}
	}
	return c.outcome(Finished), nil
}

func (c *Controller) outcome(reason StopReason) Outcome {
	return Outcome{Result: c.Status(), Reason: reason, Plies: c.Ply()}
}
