package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move represents a single move. Moves carry no reference to a board.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// Square of the captured piece when Capture is set. It differs from
	// To only for en passant captures.
	CapturedSquare Square
	Capture        bool

	// EnPassant marks an en passant capture.
	EnPassant bool

	// DoubleAdvance marks a two-square pawn push.
	DoubleAdvance bool
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Capture
}

// String returns the move in long algebraic notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a long algebraic move such as "e2e4" into its source
// and destination squares. Hyphenated forms ("e2-e4") are accepted.
func ParseMove(s string) (from, to Square, err error) {
	if len(s) == 5 && s[2] == '-' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return 0, 0, fmt.Errorf("move %q: %w", s, errors.ErrMalformedCoordinate)
	}
	if from, err = ParseSquare(s[:2]); err != nil {
		return 0, 0, err
	}
	if to, err = ParseSquare(s[2:]); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}
