package testutil

import (
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/schackmotor-go/internal/chess"
)

// MustBoard builds a board from a diagram of eight lines, rank 8 first.
// Uppercase letters are White, lowercase Black and '.' is empty. Pawns off
// their starting rank get a move count of 1; every other piece is unmoved.
// Blank lines and surrounding spaces are ignored.
func MustBoard(t testing.TB, diagram string) *chess.Board {
	t.Helper()

	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	for i, row := range rows {
		rank := chess.LastRank - i
		if len(row) != chess.BoardSize {
			t.Fatalf("rank %d has %d squares, want %d", rank, len(row), chess.BoardSize)
		}
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c == chess.EmptyLayoutChar {
				continue
			}
			owner := chess.White
			if unicode.IsLower(rune(c)) {
				owner = chess.Black
			}
			p, ok := b.Prototypes.New(byte(unicode.ToUpper(rune(c))), owner)
			if !ok {
				t.Fatalf("unknown piece %q on rank %d", c, rank)
			}
			if p.Kind == chess.Pawn && rank != owner.HomeRank()+owner.Forward() {
				p.MoveCount = 1
			}
			b.Set(chess.Sq(rank, j+1), p)
		}
	}
	return b
}

// AssertBoard compares the board against a diagram, ignoring move counts.
func AssertBoard(t testing.TB, got *chess.Board, diagram string) {
	t.Helper()
	want := MustBoard(t, diagram)
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

// AssertBoardsEqual compares two boards square by square, move counts included.
func AssertBoardsEqual(t testing.TB, got, want *chess.Board) {
	t.Helper()
	if diff := cmp.Diff(want.Squares, got.Squares); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}
