package chess

// Board holds a chess position. The square array is the only record of
// where pieces stand; piece lists are derived from it on demand.
type Board struct {
	// Squares indexed by Square (rank*8 + file).
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Is an en passant capture possible? If so then EPSquare is the
	// square the double-advancing pawn passed over.
	EnPassant bool
	EPSquare  Square

	// The current move number and the half-move clock since the last
	// pawn move or capture. Kept for FEN output only.
	MoveNumber    uint
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[MustSquare(file, 0)] = W(backRank[file])
		b.Squares[MustSquare(file, 1)] = W(Pawn)
		b.Squares[MustSquare(file, 6)] = B(Pawn)
		b.Squares[MustSquare(file, 7)] = B(backRank[file])
	}

	b.ToMove = White
	b.EnPassant = false
	b.EPSquare = 0
	b.MoveNumber = 1
	b.HalfmoveClock = 0
}

// Get returns the piece on sq. The second result is false for an empty square.
func (b *Board) Get(sq Square) (Piece, bool) {
	p := b.Squares[sq]
	return p, !p.IsEmpty()
}

// Set places a piece on sq.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq] = piece
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Squares[sq] = Piece{}
}

// EnPassantTarget returns the square a pawn may capture onto en passant.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.EPSquare, b.EnPassant
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// PlacedPiece pairs a piece with the square it stands on.
type PlacedPiece struct {
	Square Square
	Piece  Piece
}

// Pieces lists the pieces of the given colour in square order.
func (b *Board) Pieces(colour Colour) []PlacedPiece {
	var pieces []PlacedPiece
	for i, p := range b.Squares {
		if !p.IsEmpty() && p.Colour == colour {
			pieces = append(pieces, PlacedPiece{Square: Square(i), Piece: p})
		}
	}
	return pieces
}

// Count returns how many copies of piece are on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, p := range b.Squares {
		if p == piece {
			n++
		}
	}
	return n
}

// Apply relocates the moving piece and returns the piece it captured, if
// any. No legality checking is done. The en passant target is cleared on
// every call and set again only by a double advance.
func (b *Board) Apply(m Move) (Piece, bool) {
	colour := b.ToMove
	piece := b.Squares[m.From]

	var captured Piece
	if m.Capture {
		captured = b.Squares[m.CapturedSquare]
		b.Clear(m.CapturedSquare)
	}

	b.Clear(m.From)
	b.Set(m.To, piece)

	b.EnPassant = false
	b.EPSquare = 0
	if m.DoubleAdvance {
		b.EnPassant = true
		b.EPSquare = Square((int(m.From) + int(m.To)) / 2)
	}

	if piece.Kind == Pawn || !captured.IsEmpty() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if colour == Black {
		b.MoveNumber++
	}
	b.ToMove = colour.Opposite()

	return captured, !captured.IsEmpty()
}
