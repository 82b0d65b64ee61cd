// Package chess provides the core chess data model: colours, piece kinds,
// squares, pieces and the board.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn direction in ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return FirstRank
	}
	return LastRank
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Matches any kind in searches
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter identity of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase identity letter to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return NoKind, false
	}
}

// Constants for board dimensions and coordinates.
// Public coordinates are 1-based; storage indices are rank-1, file-1.
const (
	BoardSize = 8

	FirstRank = 1
	LastRank  = BoardSize
	FirstFile = 1
	LastFile  = BoardSize

	// DefaultBaseLetter is the file letter addressing file 1.
	DefaultBaseLetter = 'a'
)

// Square is a (rank, file) pair in 1-based human coordinates.
type Square struct {
	Rank int
	File int
}

// Sq is shorthand for Square{Rank: rank, File: file}.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether both coordinates are within [1,8].
func (s Square) Valid() bool {
	return s.Rank >= FirstRank && s.Rank <= LastRank &&
		s.File >= FirstFile && s.File <= LastFile
}

// String returns the square in algebraic form ("e4"), or "(r,f)" when off the board.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return fmt.Sprintf("%c%d", byte(DefaultBaseLetter+s.File-1), s.Rank)
}

// SquareFromName converts algebraic text such as "e4" to a Square.
func SquareFromName(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	sq := Sq(int(name[1]-'0'), int(name[0]-DefaultBaseLetter)+1)
	return sq, sq.Valid()
}

// FoundPiece is a disambiguation match produced when searching the board
// for movable candidates.
type FoundPiece struct {
	Identity byte
	Square   Square
}
