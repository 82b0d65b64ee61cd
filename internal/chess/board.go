package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// StandardLayout is the back rank followed by the pawn rank, from White's side.
const StandardLayout = "RNBQKBNR\nPPPPPPPP\n"

// EmptyLayoutChar marks an empty square in a layout.
const EmptyLayoutChar = '.'

// Board is an 8x8 grid of optional occupants plus the registry of piece
// prototypes used for creation and promotion. It holds no rule logic.
type Board struct {
	// Squares[rank-1][file-1]; nil is an empty square.
	Squares [BoardSize][BoardSize]*Piece

	// Prototypes used by Populate and promotion.
	Prototypes Registry
}

// NewBoard creates an empty board with the default registry.
func NewBoard() *Board {
	return &Board{Prototypes: DefaultRegistry()}
}

// NewStandardBoard creates a board populated with the standard layout.
func NewStandardBoard() *Board {
	b := NewBoard()
	if err := b.Populate(StandardLayout); err != nil {
		panic(err)
	}
	return b
}

// index converts a 1-based square to storage indices.
// An off-board square is a caller error.
func index(sq Square) (int, int) {
	if !sq.Valid() {
		panic(fmt.Sprintf("chess: square %v is off the board", sq))
	}
	return sq.Rank - 1, sq.File - 1
}

// At returns the occupant of sq, or nil when the square is empty.
func (b *Board) At(sq Square) *Piece {
	r, f := index(sq)
	return b.Squares[r][f]
}

// Get returns the occupant at the given 1-based rank and file.
func (b *Board) Get(rank, file int) *Piece {
	return b.At(Sq(rank, file))
}

// Set places a piece on sq, replacing any occupant.
func (b *Board) Set(sq Square, p *Piece) {
	r, f := index(sq)
	b.Squares[r][f] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, nil)
}

// IsEmpty reports whether sq has no occupant.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq) == nil
}

// Move relocates the occupant of from to to, clearing from.
func (b *Board) Move(from, to Square) {
	p := b.At(from)
	b.Clear(from)
	b.Set(to, p)
}

// Copy creates a deep copy of the board. Speculative boards used for check
// testing are always copies, never aliases of a live board.
func (b *Board) Copy() *Board {
	nb := &Board{Prototypes: b.Prototypes}
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			nb.Squares[r][f] = b.Squares[r][f].Clone()
		}
	}
	return nb
}

// Each calls fn for every occupied square, rank 1 to 8, file 1 to 8.
func (b *Board) Each(fn func(sq Square, p *Piece)) {
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if p := b.Squares[r][f]; p != nil {
				fn(Sq(r+1, f+1), p)
			}
		}
	}
}

// Populate fills the board from a layout description. Whitespace is
// ignored; the remaining characters are read eight at a time, row i filling
// rank i+1 for White and, mirrored, rank 8-i for Black.
func (b *Board) Populate(layout string) error {
	cells := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, layout)

	if len(cells) == 0 || len(cells)%BoardSize != 0 || len(cells) > BoardSize*BoardSize/2 {
		return fmt.Errorf("layout has %d squares, want a multiple of %d up to %d: %w",
			len(cells), BoardSize, BoardSize*BoardSize/2, errors.ErrInvalidLayout)
	}

	if b.Prototypes == nil {
		b.Prototypes = DefaultRegistry()
	}

	var next [BoardSize][BoardSize]*Piece
	for i := 0; i < len(cells); i++ {
		row, col := i/BoardSize, i%BoardSize
		c := cells[i]
		if c == EmptyLayoutChar {
			continue
		}
		white, ok := b.Prototypes.New(c, White)
		if !ok {
			return fmt.Errorf("unknown piece character %q: %w", c, errors.ErrInvalidLayout)
		}
		black, _ := b.Prototypes.New(c, Black)
		next[row][col] = white
		next[BoardSize-1-row][col] = black
	}
	b.Squares = next
	return nil
}

// String renders the board as eight lines, rank 8 first. White pieces are
// uppercase, Black lowercase, empty squares '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := LastRank; rank >= FirstRank; rank-- {
		for file := FirstFile; file <= LastFile; file++ {
			sb.WriteByte(b.Get(rank, file).Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Symbol returns the identity letter, lowercased for Black, or '.' for nil.
func (p *Piece) Symbol() byte {
	if p == nil {
		return EmptyLayoutChar
	}
	c := p.Identity()
	if p.Owner == Black {
		c = byte(unicode.ToLower(rune(c)))
	}
	return c
}
