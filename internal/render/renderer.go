// Package render draws boards as Unicode text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Glyphs, indexed by colour then kind. White pieces use the filled
// symbols.
var glyphs = [2][chess.NumPieceKinds]rune{
	chess.White: {
		chess.Pawn:   '♟',
		chess.Knight: '♞',
		chess.Bishop: '♝',
		chess.Rook:   '♜',
		chess.Queen:  '♛',
		chess.King:   '♚',
	},
	chess.Black: {
		chess.Pawn:   '♙',
		chess.Knight: '♘',
		chess.Bishop: '♗',
		chess.Rook:   '♖',
		chess.Queen:  '♕',
		chess.King:   '♔',
	},
}

// Empty square glyphs.
const (
	LightSquare = '◸'
	DarkSquare  = '◼'
)

// Glyph returns the symbol for p, or the empty-square symbol matching the
// colour of sq.
func Glyph(p chess.Piece, sq chess.Square) rune {
	if p.IsEmpty() {
		if sq.IsLight() {
			return LightSquare
		}
		return DarkSquare
	}
	return glyphs[p.Colour][p.Kind]
}

// Theme holds the square colours used when colour output is on.
type Theme struct {
	Light *color.Color
	Dark  *color.Color
}

// DefaultTheme returns the standard light and dark backgrounds.
func DefaultTheme() Theme {
	return Theme{
		Light: color.New(color.BgHiWhite, color.FgBlack),
		Dark:  color.New(color.BgGreen, color.FgBlack),
	}
}

// Renderer draws a board. The zero value draws from White's side with no
// indices and no colour.
type Renderer struct {
	// Flip draws the board from Black's side.
	Flip bool
	// Index adds file letters and rank numbers around the board.
	Index bool
	// Colour paints square backgrounds instead of drawing empty-square
	// glyphs.
	Colour bool
	Theme  Theme
}

// New creates a Renderer with the default theme.
func New(flip, index, colour bool) *Renderer {
	return &Renderer{Flip: flip, Index: index, Colour: colour, Theme: DefaultTheme()}
}

// Render writes the board to w, one rank per line.
func (r *Renderer) Render(w io.Writer, board *chess.Board) error {
	_, err := io.WriteString(w, r.String(board))
	return err
}

// String returns the rendered board.
func (r *Renderer) String(board *chess.Board) string {
	var sb strings.Builder

	files := r.fileOrder()
	if r.Index {
		r.writeFileIndex(&sb, files)
	}
	for _, rank := range r.rankOrder() {
		if r.Index {
			sb.WriteByte(byte(chess.RankBase + rank))
		}
		for _, file := range files {
			sq := chess.MustSquare(file, rank)
			piece, _ := board.Get(sq)
			sb.WriteString(r.cell(piece, sq))
		}
		if r.Index {
			sb.WriteByte(' ')
			sb.WriteByte(byte(chess.RankBase + rank))
		}
		sb.WriteByte('\n')
	}
	if r.Index {
		r.writeFileIndex(&sb, files)
	}
	return sb.String()
}

func (r *Renderer) cell(piece chess.Piece, sq chess.Square) string {
	if !r.Colour {
		return string(Glyph(piece, sq))
	}

	bg := r.Theme.Dark
	if sq.IsLight() {
		bg = r.Theme.Light
	}
	text := " "
	if !piece.IsEmpty() {
		text = string(Glyph(piece, sq))
	}
	if bg == nil {
		return text
	}
	return bg.Sprint(text)
}

func (r *Renderer) writeFileIndex(sb *strings.Builder, files []int) {
	sb.WriteByte(' ')
	for _, file := range files {
		sb.WriteByte(byte(chess.FileBase + file))
	}
	sb.WriteByte('\n')
}

// rankOrder lists ranks top to bottom as drawn.
func (r *Renderer) rankOrder() []int {
	ranks := make([]int, chess.BoardSize)
	for i := range ranks {
		if r.Flip {
			ranks[i] = i
		} else {
			ranks[i] = chess.BoardSize - 1 - i
		}
	}
	return ranks
}

// fileOrder lists files left to right as drawn.
func (r *Renderer) fileOrder() []int {
	files := make([]int, chess.BoardSize)
	for i := range files {
		if r.Flip {
			files[i] = chess.BoardSize - 1 - i
		} else {
			files[i] = i
		}
	}
	return files
}

// RenderCaptured writes the captured pieces of each side, one line per
// side, as "White: ♟♟" and "Black: ♘".
func RenderCaptured(w io.Writer, white, black []chess.Piece) error {
	_, err := fmt.Fprintf(w, "White: %s\nBlack: %s\n", glyphString(white), glyphString(black))
	return err
}

func glyphString(pieces []chess.Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteRune(glyphs[p.Colour][p.Kind])
	}
	return sb.String()
}

// StatusLine returns e.g. "White to move", with " (check)" appended when
// the side to move is in check.
func StatusLine(side chess.Colour, inCheck bool) string {
	s := side.String() + " to move"
	if inCheck {
		s += " (check)"
	}
	return s
}
