// Package game drives a chess game through its turn states.
package game

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// State is the turn-level state of a game.
type State int

const (
	WhiteToMove State = iota
	BlackToMove
	WhiteWins
	BlackWins
	Draw
)

func (s State) String() string {
	switch s {
	case WhiteToMove:
		return "WhiteToMove"
	case BlackToMove:
		return "BlackToMove"
	case WhiteWins:
		return "WhiteWins"
	case BlackWins:
		return "BlackWins"
	case Draw:
		return "Draw"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// IsTerminal returns true once no further move may be submitted.
func (s State) IsTerminal() bool {
	return s == WhiteWins || s == BlackWins || s == Draw
}

// Result summarises where a game stands.
type Result struct {
	State  State
	Status engine.Status // Checkmate or Stalemate once terminal

	// Winner is valid only when HasWinner is true.
	Winner    chess.Colour
	HasWinner bool
}

func (r Result) String() string {
	switch {
	case r.HasWinner:
		return fmt.Sprintf("%v wins by checkmate", r.Winner)
	case r.State == Draw:
		return "Draw by stalemate"
	case r.State == BlackToMove:
		return "Black to move"
	}
	return "White to move"
}

// Option configures a Controller.
type Option func(*Controller)

// WithLog sends the move log to w. Verbosity 1 logs the final result,
// 2 logs every ply as well.
func WithLog(w io.Writer, verbosity int) Option {
	return func(c *Controller) {
		c.logFile = w
		c.verbosity = verbosity
	}
}

// Controller owns the board of one game and moves it between states.
// It is not safe for concurrent use.
type Controller struct {
	board  *chess.Board
	state  State
	status engine.Status

	history []chess.Move
	// Lost pieces, indexed by the colour of the captured piece.
	captured [2][]chess.Piece

	logFile   io.Writer
	verbosity int
}

// NewController starts a game from the standard initial position.
func NewController(opts ...Option) *Controller {
	c, err := NewControllerFromBoard(chess.NewInitialBoard(), opts...)
	if err != nil {
		// The initial layout always has both kings.
		panic(err)
	}
	return c
}

// NewControllerFromBoard starts a game from a copy of board. The
// starting state is found by evaluating the side to move, so a mated or
// stalemated position starts terminal. Both kings must be present and
// the side not to move must not be in check.
func NewControllerFromBoard(board *chess.Board, opts ...Option) (*Controller, error) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := engine.FindKing(board, colour); err != nil {
			return nil, err
		}
	}
	if waiting := board.ToMove.Opposite(); engine.IsInCheck(board, waiting) {
		return nil, errors.Wrapf(errors.ErrInconsistentState, "%v in check with %v to move", waiting, board.ToMove)
	}

	c := &Controller{board: board.Copy()}
	for _, opt := range opts {
		opt(c)
	}
	c.evaluate()
	return c, nil
}

// Submit applies m for the side to move. A move not in the legal set
// yields a *errors.MoveError wrapping ErrInvalidMove and leaves the
// board untouched.
func (c *Controller) Submit(m chess.Move) error {
	if c.state.IsTerminal() {
		return errors.ErrGameOver
	}

	side := c.board.ToMove
	if !engine.IsLegal(c.board, m) {
		return &errors.MoveError{
			Err:      errors.ErrInvalidMove,
			Ply:      c.Ply() + 1,
			Side:     side.String(),
			MoveText: m.String(),
		}
	}

	if piece, ok := c.board.Apply(m); ok {
		c.captured[piece.Colour] = append(c.captured[piece.Colour], piece)
	}
	c.history = append(c.history, m)
	c.logf(2, "%d. %v %v\n", c.Ply(), side, m)

	c.evaluate()
	if c.state.IsTerminal() {
		c.logf(1, "%v after %d plies\n", c.Status(), c.Ply())
	}
	return nil
}

// SubmitText parses long algebraic text such as "e2e4" and submits the
// legal move with those squares.
func (c *Controller) SubmitText(text string) error {
	if c.state.IsTerminal() {
		return errors.ErrGameOver
	}

	from, to, err := chess.ParseMove(text)
	if err == nil {
		var m chess.Move
		if m, err = engine.FindMove(c.board, from, to); err == nil {
			return c.Submit(m)
		}
	}
	return &errors.MoveError{
		Err:      err,
		Ply:      c.Ply() + 1,
		Side:     c.board.ToMove.String(),
		MoveText: text,
	}
}

// evaluate sets the state from the position of the side to move.
func (c *Controller) evaluate() {
	side := c.board.ToMove
	c.status = engine.GameStatus(c.board, side)

	switch c.status {
	case engine.Checkmate:
		if side == chess.White {
			c.state = BlackWins
		} else {
			c.state = WhiteWins
		}
	case engine.Stalemate:
		c.state = Draw
	default:
		if side == chess.White {
			c.state = WhiteToMove
		} else {
			c.state = BlackToMove
		}
	}
}

func (c *Controller) logf(level int, format string, args ...interface{}) {
	if c.logFile != nil && c.verbosity >= level {
		fmt.Fprintf(c.logFile, format, args...)
	}
}

// State returns the current turn state.
func (c *Controller) State() State {
	return c.state
}

// Status returns the current state along with how the game ended.
func (c *Controller) Status() Result {
	r := Result{State: c.state, Status: c.status}
	switch c.state {
	case WhiteWins:
		r.Winner, r.HasWinner = chess.White, true
	case BlackWins:
		r.Winner, r.HasWinner = chess.Black, true
	}
	return r
}

// Board returns a snapshot of the current position.
func (c *Controller) Board() *chess.Board {
	return c.board.Copy()
}

// ToMove returns the side whose turn it is.
func (c *Controller) ToMove() chess.Colour {
	return c.board.ToMove
}

// LegalMoves returns the moves available to the side to move, or nil
// once the game is over.
func (c *Controller) LegalMoves() []chess.Move {
	if c.state.IsTerminal() {
		return nil
	}
	return engine.LegalMoves(c.board, c.board.ToMove)
}

// InCheck returns true if the side to move is in check.
func (c *Controller) InCheck() bool {
	return engine.IsInCheck(c.board, c.board.ToMove)
}

// History returns the moves played so far.
func (c *Controller) History() []chess.Move {
	return append([]chess.Move(nil), c.history...)
}

// Captured returns the pieces of colour that have been captured, in
// capture order.
func (c *Controller) Captured(colour chess.Colour) []chess.Piece {
	return append([]chess.Piece(nil), c.captured[colour]...)
}

// Ply returns the number of moves played.
func (c *Controller) Ply() int {
	return len(c.history)
}
