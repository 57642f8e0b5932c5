package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square identifies one of the 64 board squares as rank*8 + file.
// Off-board coordinates are rejected by every constructor.
type Square uint8

// NewSquare returns the square at the given file and rank, both in [0,8).
func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return 0, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrMalformedCoordinate)
	}
	return Square(rank*BoardSize + file), nil
}

// MustSquare is like NewSquare but panics on a malformed coordinate.
// Intended for tables and tests.
func MustSquare(file, rank int) Square {
	sq, err := NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrMalformedCoordinate)
	}
	sq, err := NewSquare(int(s[0])-FileBase, int(s[1])-RankBase)
	if err != nil {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrMalformedCoordinate)
	}
	return sq, nil
}

// Sq is a test and table helper that parses a square and panics on error.
func Sq(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the file index, 0 for the a-file.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index, 0 for the first rank.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Offset returns the square df files and dr ranks away. The second
// result is false if that square would be off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if !onBoard(f, r) {
		return 0, false
	}
	return Square(r*BoardSize + f), true
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns algebraic coordinates, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}
