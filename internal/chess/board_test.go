package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if _, ok := b.EnPassantTarget(); ok {
			t.Error("EnPassantTarget() ok = true; want false")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if p, ok := b.Get(sq); ok {
				t.Errorf("Get(%v) = %v; want empty", sq, p)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		square string
		piece  Piece
	}{
		{"a1", W(Rook)},
		{"b1", W(Knight)},
		{"c1", W(Bishop)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"h1", W(Rook)},
		{"e2", W(Pawn)},
		{"a7", B(Pawn)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"g8", B(Knight)},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got, ok := b.Get(Sq(tt.square))
			if !ok || got != tt.piece {
				t.Errorf("Get(%s) = %v, %v; want %v", tt.square, got, ok, tt.piece)
			}
		})
	}

	for rank := 2; rank < 6; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p, ok := b.Get(MustSquare(file, rank)); ok {
				t.Errorf("Get(%v) = %v; want empty", MustSquare(file, rank), p)
			}
		}
	}

	if n := len(b.Pieces(White)); n != 16 {
		t.Errorf("len(Pieces(White)) = %d; want 16", n)
	}
	if n := b.Count(B(King)); n != 1 {
		t.Errorf("Count(black king) = %d; want 1", n)
	}
}

func TestNewSquare(t *testing.T) {
	tests := []struct {
		file, rank int
		want       string
		wantErr    bool
	}{
		{0, 0, "a1", false},
		{4, 3, "e4", false},
		{7, 7, "h8", false},
		{-1, 0, "", true},
		{0, 8, "", true},
		{8, 8, "", true},
	}

	for _, tt := range tests {
		sq, err := NewSquare(tt.file, tt.rank)
		if tt.wantErr {
			if !errors.Is(err, chesserrors.ErrMalformedCoordinate) {
				t.Errorf("NewSquare(%d, %d) error = %v; want ErrMalformedCoordinate", tt.file, tt.rank, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewSquare(%d, %d) unexpected error: %v", tt.file, tt.rank, err)
			continue
		}
		if sq.String() != tt.want {
			t.Errorf("NewSquare(%d, %d) = %v; want %s", tt.file, tt.rank, sq, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for _, s := range []string{"a1", "d4", "h8"} {
		sq, err := ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", s, err)
		}
		if sq.String() != s {
			t.Errorf("ParseSquare(%q).String() = %q", s, sq.String())
		}
	}

	for _, s := range []string{"", "e", "i1", "a9", "a0", "e44", "E4"} {
		if _, err := ParseSquare(s); !errors.Is(err, chesserrors.ErrMalformedCoordinate) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrMalformedCoordinate", s, err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	tests := []struct {
		from   string
		df, dr int
		want   string
		ok     bool
	}{
		{"e4", 1, 2, "f6", true},
		{"a1", -1, 0, "", false},
		{"h8", 0, 1, "", false},
		{"h1", 1, 0, "", false},
		{"a8", 7, -7, "h1", true},
	}

	for _, tt := range tests {
		got, ok := Sq(tt.from).Offset(tt.df, tt.dr)
		if ok != tt.ok {
			t.Errorf("%s.Offset(%d, %d) ok = %v; want %v", tt.from, tt.df, tt.dr, ok, tt.ok)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("%s.Offset(%d, %d) = %v; want %s", tt.from, tt.df, tt.dr, got, tt.want)
		}
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	c.Clear(Sq("e2"))
	c.ToMove = Black

	if _, ok := b.Get(Sq("e2")); !ok {
		t.Error("original board affected by change to copy")
	}
	if b.ToMove != White {
		t.Error("original ToMove affected by change to copy")
	}
}

func TestApply(t *testing.T) {
	t.Run("quiet move flips side", func(t *testing.T) {
		b := NewInitialBoard()
		_, captured := b.Apply(Move{From: Sq("g1"), To: Sq("f3")})

		if captured {
			t.Error("Apply() reported a capture for a quiet move")
		}
		if _, ok := b.Get(Sq("g1")); ok {
			t.Error("source square not cleared")
		}
		if p, _ := b.Get(Sq("f3")); p != W(Knight) {
			t.Errorf("Get(f3) = %v; want White Knight", p)
		}
		if b.ToMove != Black {
			t.Errorf("ToMove = %v; want Black", b.ToMove)
		}
	})

	t.Run("double advance sets target", func(t *testing.T) {
		b := NewInitialBoard()
		b.Apply(Move{From: Sq("e2"), To: Sq("e4"), DoubleAdvance: true})

		target, ok := b.EnPassantTarget()
		if !ok || target != Sq("e3") {
			t.Errorf("EnPassantTarget() = %v, %v; want e3, true", target, ok)
		}

		b.Apply(Move{From: Sq("d7"), To: Sq("d5"), DoubleAdvance: true})
		target, ok = b.EnPassantTarget()
		if !ok || target != Sq("d6") {
			t.Errorf("EnPassantTarget() = %v, %v; want d6, true", target, ok)
		}

		b.Apply(Move{From: Sq("g1"), To: Sq("f3")})
		if _, ok := b.EnPassantTarget(); ok {
			t.Error("EnPassantTarget() still set after a quiet move")
		}
	})

	t.Run("en passant removes captured square", func(t *testing.T) {
		b := NewBoard()
		b.Set(Sq("e4"), W(Pawn))
		b.Set(Sq("d4"), B(Pawn))
		b.ToMove = Black
		b.EnPassant = true
		b.EPSquare = Sq("e3")

		got, ok := b.Apply(Move{
			From:           Sq("d4"),
			To:             Sq("e3"),
			CapturedSquare: Sq("e4"),
			Capture:        true,
			EnPassant:      true,
		})

		if !ok || got != W(Pawn) {
			t.Errorf("Apply() captured = %v, %v; want White Pawn, true", got, ok)
		}
		if _, ok := b.Get(Sq("e4")); ok {
			t.Error("captured pawn still on e4")
		}
		if p, _ := b.Get(Sq("e3")); p != B(Pawn) {
			t.Errorf("Get(e3) = %v; want Black Pawn", p)
		}
		if b.MoveNumber != 2 {
			t.Errorf("MoveNumber = %d; want 2", b.MoveNumber)
		}
	})
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("e2e4")
	if err != nil || from != Sq("e2") || to != Sq("e4") {
		t.Errorf("ParseMove(e2e4) = %v, %v, %v", from, to, err)
	}

	from, to, err = ParseMove("g1-f3")
	if err != nil || from != Sq("g1") || to != Sq("f3") {
		t.Errorf("ParseMove(g1-f3) = %v, %v, %v", from, to, err)
	}

	for _, s := range []string{"", "e2", "e2e9", "z1a1", "e2xe4"} {
		if _, _, err := ParseMove(s); !errors.Is(err, chesserrors.ErrMalformedCoordinate) {
			t.Errorf("ParseMove(%q) error = %v; want ErrMalformedCoordinate", s, err)
		}
	}

	if s := (Move{From: Sq("b8"), To: Sq("c6")}).String(); s != "b8c6" {
		t.Errorf("Move.String() = %q; want b8c6", s)
	}
}
