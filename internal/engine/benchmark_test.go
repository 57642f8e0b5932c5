package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w - e6 0 3",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkFEN_RoundTrip(b *testing.B) {
	fen := benchFENs["Midgame"]
	for i := 0; i < b.N; i++ {
		board, _ := NewBoardFromFEN(fen)
		BoardToFEN(board)
	}
}

func BenchmarkApply(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"Capture", benchFENs["Midgame"], "f3e5"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(tt.fen)
			from, to, _ := chess.ParseMove(tt.move)
			m, err := FindMove(board, from, to)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				boardCopy := board.Copy()
				boardCopy.Apply(m)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board, _ := NewBoardFromFEN(benchFENs["Initial"])
		for _, text := range moves {
			from, to, _ := chess.ParseMove(text)
			m, _ := FindMove(board, from, to)
			board.Apply(m)
		}
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board, board.ToMove)
			}
		})
	}
}

func BenchmarkPerft(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Initial"])
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w - - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}
