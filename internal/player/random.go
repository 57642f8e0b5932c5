package player

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Random picks uniformly among the legal moves. Games are reproducible
// for a given seed.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// NextMove returns one of the legal moves.
func (r *Random) NextMove(board *chess.Board, legal []chess.Move) (chess.Move, error) {
	if len(legal) == 0 {
		return chess.Move{}, fmt.Errorf("%v has no legal moves: %w", board.ToMove, errors.ErrGameOver)
	}
	return legal[r.rng.Intn(len(legal))], nil
}
