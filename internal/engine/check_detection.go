package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// AttackSquares returns the squares the piece on sq attacks. For every
// kind but the pawn these are its pseudo-legal destinations; a pawn
// attacks only its two forward diagonals, whether or not they are occupied.
func AttackSquares(board *chess.Board, sq chess.Square) []chess.Square {
	piece, ok := board.Get(sq)
	if !ok {
		return nil
	}

	var squares []chess.Square
	if piece.Kind == chess.Pawn {
		for _, df := range []int{-1, 1} {
			if to, ok := sq.Offset(df, piece.Colour.Forward()); ok {
				squares = append(squares, to)
			}
		}
		return squares
	}

	for _, d := range PseudoLegalDestinations(board, sq) {
		squares = append(squares, d.To)
	}
	return squares
}

// IsAttacked returns true if some piece of byColour attacks sq. It never
// consults king safety.
func IsAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, pp := range board.Pieces(byColour) {
		for _, target := range AttackSquares(board, pp.Square) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsAttacked(board, mustFindKing(board, colour), colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	for i, p := range board.Squares {
		if p == king {
			return chess.Square(i), nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInconsistentState, "no %v king", colour)
}

// mustFindKing is FindKing for positions already known to be valid. A
// missing king there is an engine defect, so it panics.
func mustFindKing(board *chess.Board, colour chess.Colour) chess.Square {
	sq, err := FindKing(board, colour)
	if err != nil {
		panic(err)
	}
	return sq
}
