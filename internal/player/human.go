// Package player provides move sources for the game loop.
package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const (
	promptText    = "Input chosen move: "
	notUnderstood = "Input not understood. Try again."
	letters       = 26
)

// Human reads moves from a line-oriented terminal. The legal moves are
// listed under letter keys; either a key or long algebraic text selects
// a move, and "?" lists the moves again.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman creates a Human reading from in and printing to out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

// NextMove lists the legal moves and reads until one is chosen. It
// returns io.EOF when the input runs out.
func (h *Human) NextMove(board *chess.Board, legal []chess.Move) (chess.Move, error) {
	keys := h.printMenu(board, legal)

	for {
		fmt.Fprint(h.out, promptText)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return chess.Move{}, err
			}
			return chess.Move{}, io.EOF
		}

		text := strings.ToLower(strings.TrimSpace(h.in.Text()))
		if text == "?" {
			keys = h.printMenu(board, legal)
			continue
		}
		if m, ok := keys[text]; ok {
			return m, nil
		}
		if m, ok := matchCoordinates(text, legal); ok {
			return m, nil
		}
		fmt.Fprintln(h.out, notUnderstood)
	}
}

// printMenu writes one line per legal move and returns the key map.
func (h *Human) printMenu(board *chess.Board, legal []chess.Move) map[string]chess.Move {
	keys := make(map[string]chess.Move, len(legal))
	for i, m := range legal {
		key := MenuKey(i)
		keys[key] = m
		fmt.Fprintf(h.out, "%s) %s\n", key, Describe(board, m))
	}
	return keys
}

// MenuKey returns the menu key of the i'th move: "a" to "z", then "aa",
// "ab" and so on.
func MenuKey(i int) string {
	if i < letters {
		return string(rune('a' + i))
	}
	i -= letters
	return string([]rune{rune('a' + i/letters), rune('a' + i%letters)})
}

// Describe renders a move as "Knight g1 -> f3".
func Describe(board *chess.Board, m chess.Move) string {
	piece, _ := board.Get(m.From)
	return fmt.Sprintf("%s %s -> %s", piece.Kind, m.From, m.To)
}

// matchCoordinates finds the legal move written as "g1f3" or "g1-f3".
func matchCoordinates(text string, legal []chess.Move) (chess.Move, bool) {
	from, to, err := chess.ParseMove(text)
	if err != nil {
		return chess.Move{}, false
	}
	for _, m := range legal {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}
