package testutil

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Placement maps algebraic squares ("e4") to pieces.
type Placement map[string]chess.Piece

// NewBoard builds a board holding exactly the given pieces, with toMove
// to move. It calls t.Fatal on a malformed square.
func NewBoard(t *testing.T, toMove chess.Colour, pieces Placement) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	board.ToMove = toMove
	for s, p := range pieces {
		sq, err := chess.ParseSquare(s)
		if err != nil {
			t.Fatalf("NewBoard: %v", err)
		}
		board.Set(sq, p)
	}
	return board
}

// Squares parses a list of algebraic squares, calling t.Fatal on error.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, s := range names {
		sq, err := chess.ParseSquare(s)
		if err != nil {
			t.Fatalf("Squares: %v", err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// Move parses a long algebraic move into a quiet Move value, calling
// t.Fatal on error. Flags must be set by the caller where needed.
func Move(t *testing.T, s string) chess.Move {
	t.Helper()
	from, to, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	return chess.Move{From: from, To: to}
}

// Contains reports whether squares includes sq.
func Contains(squares []chess.Square, sq chess.Square) bool {
	return slices.Contains(squares, sq)
}
