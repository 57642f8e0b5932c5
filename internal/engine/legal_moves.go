package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LegalMoves returns every legal move for the given colour: the
// pseudo-legal moves that do not leave its own king attacked.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, m := range PseudoLegalMoves(board, colour) {
		if leavesKingSafe(board, m, colour) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, m := range PseudoLegalMoves(board, colour) {
		if leavesKingSafe(board, m, colour) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is legal for the side to move.
func IsLegal(board *chess.Board, m chess.Move) bool {
	for _, legal := range LegalMoves(board, board.ToMove) {
		if legal == m {
			return true
		}
	}
	return false
}

// FindMove returns the legal move for the side to move that goes from
// from to to.
func FindMove(board *chess.Board, from, to chess.Square) (chess.Move, error) {
	for _, m := range LegalMoves(board, board.ToMove) {
		if m.From == from && m.To == to {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%v%v: %w", from, to, errors.ErrInvalidMove)
}

// leavesKingSafe makes the move on a scratch copy and checks that the
// mover's king is not attacked afterwards.
func leavesKingSafe(board *chess.Board, m chess.Move, colour chess.Colour) bool {
	scratch := board.Copy()
	scratch.ToMove = colour
	scratch.Apply(m)
	return !IsInCheck(scratch, colour)
}
