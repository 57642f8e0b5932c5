package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// invariantFENs is a spread of positions used by the property tests.
var invariantFENs = []string{
	InitialFEN,
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w - e6 0 3",
	"4k3/8/8/8/1b6/8/3P4/4K3 w - - 0 1",
	"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	"8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
}

func TestLegalMovesInitialPosition(t *testing.T) {
	board := chess.NewInitialBoard()

	testutil.AssertEqual(t, len(LegalMoves(board, chess.White)), 20, "white moves")
	testutil.AssertEqual(t, len(LegalMoves(board, chess.Black)), 20, "black moves")
}

func TestPinnedPieceCannotLeaveLine(t *testing.T) {
	board := MustBoardFromFEN("4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")

	for _, m := range LegalMoves(board, chess.White) {
		if m.From == chess.Sq("e2") {
			t.Errorf("pinned bishop moved: %v", m)
		}
	}
}

func TestKingCannotStepIntoAttack(t *testing.T) {
	board := MustBoardFromFEN("3rk3/8/8/8/8/8/8/4K3 w - - 0 1")

	var got []chess.Square
	for _, m := range LegalMoves(board, chess.White) {
		got = append(got, m.To)
	}
	testutil.AssertSameSquares(t, got, testutil.Squares(t, "e2", "f1", "f2"))
}

func TestKingCannotCaptureDefendedPiece(t *testing.T) {
	// The queen on e2 is defended by the rook on e8.
	board := MustBoardFromFEN("k3r3/8/8/8/8/8/4q3/4K3 w - - 0 1")

	testutil.AssertTrue(t, IsInCheck(board, chess.White))
	testutil.AssertEqual(t, len(LegalMoves(board, chess.White)), 0)
	testutil.AssertEqual(t, GameStatus(board, chess.White), Checkmate)
}

func TestKingCanCaptureUndefendedPiece(t *testing.T) {
	board := MustBoardFromFEN("k7/8/8/8/8/8/4q3/4K3 w - - 0 1")

	moves := LegalMoves(board, chess.White)
	testutil.AssertEqual(t, len(moves), 1)
	testutil.AssertEqual(t, moves[0].String(), "e1e2")
	testutil.AssertTrue(t, moves[0].Capture, "capture flag")
}

func TestCheckEvasions(t *testing.T) {
	// Bishop check from b4: block on c3/d2 or move the king.
	board := MustBoardFromFEN("4k3/8/8/8/1b6/8/8/1N2K1N1 w - - 0 1")

	var got []string
	for _, m := range LegalMoves(board, chess.White) {
		got = append(got, m.String())
	}
	want := []string{"b1c3", "b1d2", "e1d1", "e1e2", "e1f1", "e1f2"}
	testutil.AssertEqual(t, sortedStrings(got), sortedStrings(want))
}

func TestEnPassantDiscoveredCheck(t *testing.T) {
	// Capturing en passant would expose the black king on the fourth rank.
	board := MustBoardFromFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")

	for _, m := range LegalMoves(board, chess.Black) {
		if m.EnPassant {
			t.Errorf("illegal en passant generated: %v", m)
		}
	}
}

// TestLegalMovesNeverLeaveKingAttacked checks the defining property of a
// legal move on every test position, for both sides.
func TestLegalMovesNeverLeaveKingAttacked(t *testing.T) {
	for _, fen := range invariantFENs {
		board := MustBoardFromFEN(fen)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, m := range LegalMoves(board, colour) {
				scratch := board.Copy()
				scratch.ToMove = colour
				scratch.Apply(m)
				if IsInCheck(scratch, colour) {
					t.Errorf("%s: %v move %v leaves king attacked", fen, colour, m)
				}
			}
		}
	}
}

func TestLegalMovesIdempotent(t *testing.T) {
	for _, fen := range invariantFENs {
		board := MustBoardFromFEN(fen)
		before := BoardToFEN(board)

		first := LegalMoves(board, board.ToMove)
		second := LegalMoves(board, board.ToMove)

		testutil.AssertEqual(t, second, first, "repeat on %s", fen)
		testutil.AssertEqual(t, BoardToFEN(board), before, "board mutated by LegalMoves")
	}
}

func TestLegalMovesPreserveKings(t *testing.T) {
	for _, fen := range invariantFENs {
		board := MustBoardFromFEN(fen)
		for _, m := range LegalMoves(board, board.ToMove) {
			scratch := board.Copy()
			scratch.Apply(m)
			white, black := CountKings(scratch)
			if white != 1 || black != 1 {
				t.Errorf("%s: after %v kings = %d/%d, want 1/1", fen, m, white, black)
			}
		}
	}
}

func TestFindMove(t *testing.T) {
	board := chess.NewInitialBoard()

	m, err := FindMove(board, chess.Sq("e2"), chess.Sq("e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, m.DoubleAdvance, "double advance flag")

	_, err = FindMove(board, chess.Sq("e2"), chess.Sq("e5"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

	_, err = FindMove(board, chess.Sq("e7"), chess.Sq("e5"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove, "black piece on white's turn")
}

func TestIsLegal(t *testing.T) {
	board := chess.NewInitialBoard()

	testutil.AssertTrue(t, IsLegal(board, chess.Move{From: chess.Sq("g1"), To: chess.Sq("f3")}))
	testutil.AssertFalse(t, IsLegal(board, chess.Move{From: chess.Sq("e2"), To: chess.Sq("e4")}),
		"flags must match the generated move")
	testutil.AssertFalse(t, IsLegal(board, chess.Move{From: chess.Sq("d1"), To: chess.Sq("d3")}))
}

func TestHasLegalMoves(t *testing.T) {
	testutil.AssertTrue(t, HasLegalMoves(chess.NewInitialBoard(), chess.White))
	testutil.AssertFalse(t, HasLegalMoves(MustBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"), chess.Black))
}

func sortedStrings(s []string) []string {
	out := append([]string(nil), s...)
	slices.Sort(out)
	return out
}

func TestEnPassantWindowLastsOnePly(t *testing.T) {
	board := MustBoardFromFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	capture := chess.Move{
		From:           chess.Sq("d4"),
		To:             chess.Sq("e3"),
		CapturedSquare: chess.Sq("e4"),
		Capture:        true,
		EnPassant:      true,
	}

	board.Apply(chess.Move{From: chess.Sq("e2"), To: chess.Sq("e4"), DoubleAdvance: true})
	testutil.AssertTrue(t, IsLegal(board, capture), "capture right after the double advance")

	after := board.Copy()
	after.Apply(capture)
	if _, ok := after.Get(chess.Sq("e4")); ok {
		t.Error("captured pawn still on e4")
	}

	board.Apply(chess.Move{From: chess.Sq("e8"), To: chess.Sq("d8")})
	board.Apply(chess.Move{From: chess.Sq("e1"), To: chess.Sq("d1")})
	testutil.AssertFalse(t, IsLegal(board, capture), "window closed after one ply")
	for _, m := range LegalMoves(board, chess.Black) {
		if m.EnPassant {
			t.Errorf("en passant still generated: %v", m)
		}
	}
}
