package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		child.Apply(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide counts the nodes below every root move, spreading the root
// moves over a worker pool. Entries come back in legal-move order.
func PerftDivide(board *chess.Board, depth, workers int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	moves := LegalMoves(board, board.ToMove)
	jobs := make([]worker.Job, len(moves))
	for i, m := range moves {
		child := board.Copy()
		child.Apply(m)
		jobs[i] = worker.Job{Board: child, Move: m, Depth: depth - 1}
	}

	counts := worker.NewPool(Perft, worker.WithWorkers(workers)).Run(jobs)

	entries := make([]DivideEntry, len(counts))
	for i, c := range counts {
		entries[i] = DivideEntry{Move: c.Move, Nodes: c.Nodes}
	}
	return entries
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
