// Package engine provides chess move generation, check detection and
// game status evaluation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Destination is one pseudo-legal target of a piece.
type Destination struct {
	To            chess.Square
	Capture       bool
	EnPassant     bool
	DoubleAdvance bool
}

// Offset tables. Generation order follows table order, then distance.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs     = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// generatorFunc computes the pseudo-legal destinations of the piece on sq.
type generatorFunc func(board *chess.Board, sq chess.Square, piece chess.Piece) []Destination

// generators dispatches move generation by piece kind.
var generators = [chess.NumPieceKinds]generatorFunc{
	chess.Pawn:   pawnDestinations,
	chess.Knight: stepper(knightOffsets),
	chess.Bishop: slider(diagonalDirs),
	chess.Rook:   slider(straightDirs),
	chess.Queen:  slider(queenDirs),
	chess.King:   stepper(kingOffsets),
}

// PseudoLegalDestinations returns the destinations of the piece on sq,
// ignoring whether the move would leave its own king in check.
// An empty square has no destinations.
func PseudoLegalDestinations(board *chess.Board, sq chess.Square) []Destination {
	piece, ok := board.Get(sq)
	if !ok {
		return nil
	}
	gen := generators[piece.Kind]
	if gen == nil {
		return nil
	}
	return gen(board, sq, piece)
}

// PseudoLegalMoves returns every pseudo-legal move for the given colour,
// in square order.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, pp := range board.Pieces(colour) {
		for _, d := range PseudoLegalDestinations(board, pp.Square) {
			moves = append(moves, toMove(pp.Square, d, colour))
		}
	}
	return moves
}

// toMove converts a destination into a move from sq.
func toMove(from chess.Square, d Destination, colour chess.Colour) chess.Move {
	m := chess.Move{
		From:          from,
		To:            d.To,
		Capture:       d.Capture,
		EnPassant:     d.EnPassant,
		DoubleAdvance: d.DoubleAdvance,
	}
	if d.Capture {
		m.CapturedSquare = d.To
	}
	if d.EnPassant {
		// The captured pawn sits beside the mover, behind the target.
		m.CapturedSquare, _ = d.To.Offset(0, -colour.Forward())
	}
	return m
}

// stepper returns a generator for pieces that jump by fixed offsets.
func stepper(offsets [][2]int) generatorFunc {
	return func(board *chess.Board, sq chess.Square, piece chess.Piece) []Destination {
		var dests []Destination
		for _, off := range offsets {
			to, ok := sq.Offset(off[0], off[1])
			if !ok {
				continue
			}
			target, occupied := board.Get(to)
			if occupied && target.Colour == piece.Colour {
				continue
			}
			dests = append(dests, Destination{To: to, Capture: occupied})
		}
		return dests
	}
}

// slider returns a generator for pieces that move along rays.
func slider(dirs [][2]int) generatorFunc {
	return func(board *chess.Board, sq chess.Square, piece chess.Piece) []Destination {
		var dests []Destination
		for _, dir := range dirs {
			to, ok := sq.Offset(dir[0], dir[1])
			for ok {
				target, occupied := board.Get(to)
				if occupied {
					if target.Colour != piece.Colour {
						dests = append(dests, Destination{To: to, Capture: true})
					}
					break // Blocked
				}
				dests = append(dests, Destination{To: to})
				to, ok = to.Offset(dir[0], dir[1])
			}
		}
		return dests
	}
}

// pawnDestinations generates pushes, double pushes, captures and en passant.
func pawnDestinations(board *chess.Board, sq chess.Square, piece chess.Piece) []Destination {
	var dests []Destination
	dir := piece.Colour.Forward()

	// Forward moves
	if one, ok := sq.Offset(0, dir); ok {
		if _, occupied := board.Get(one); !occupied {
			dests = append(dests, Destination{To: one})

			if sq.Rank() == piece.Colour.PawnRank() {
				if two, ok := one.Offset(0, dir); ok {
					if _, occupied := board.Get(two); !occupied {
						dests = append(dests, Destination{To: two, DoubleAdvance: true})
					}
				}
			}
		}
	}

	// Captures
	epTarget, epOK := board.EnPassantTarget()
	for _, df := range []int{-1, 1} {
		to, ok := sq.Offset(df, dir)
		if !ok {
			continue
		}
		if target, occupied := board.Get(to); occupied {
			if target.Colour != piece.Colour {
				dests = append(dests, Destination{To: to, Capture: true})
			}
			continue
		}
		if epOK && to == epTarget && canCaptureEnPassant(board, sq, to, piece.Colour) {
			dests = append(dests, Destination{To: to, Capture: true, EnPassant: true})
		}
	}

	return dests
}

// canCaptureEnPassant checks that the pawn on from stands on the rank
// adjacent to the target and that an enemy pawn sits beside it.
func canCaptureEnPassant(board *chess.Board, from, target chess.Square, colour chess.Colour) bool {
	if target.Rank()-from.Rank() != colour.Forward() {
		return false
	}
	victimSq, ok := target.Offset(0, -colour.Forward())
	if !ok {
		return false
	}
	victim, occupied := board.Get(victimSq)
	return occupied && victim == chess.Piece{Kind: chess.Pawn, Colour: colour.Opposite()}
}
