package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status classifies a position for one side.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// GameStatus returns Checkmate if colour is in check with no legal
// moves, Stalemate if it is not in check but has no legal moves, and
// Ongoing otherwise.
func GameStatus(board *chess.Board, colour chess.Colour) Status {
	if HasLegalMoves(board, colour) {
		return Ongoing
	}
	if IsInCheck(board, colour) {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return GameStatus(board, board.ToMove) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return GameStatus(board, board.ToMove) == Stalemate
}
