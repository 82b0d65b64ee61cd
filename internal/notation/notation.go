// Package notation parses move text into typed moves. It knows nothing about
// the board: resolving which piece moves and whether the move is legal is
// the engine's job.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// Castling literals.
const (
	KingsideCastleText  = "O-O"
	QueensideCastleText = "O-O-O"
)

// CaptureSeparator divides the disambiguating prefix from the destination.
const CaptureSeparator = 'x'

// Class categorizes the shapes of move text.
type Class int

const (
	PlainMove Class = iota
	CaptureMove
	PromotionMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a class.
func (c Class) String() string {
	names := []string{"Plain", "Capture", "Promotion", "KingsideCastle", "QueensideCastle"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is a parsed move. FromRank and FromFile are 1-based disambiguators;
// zero means unknown. To is unset for castling.
type Move struct {
	Text      string
	Class     Class
	Piece     chess.Kind
	FromRank  int
	FromFile  int
	To        chess.Square
	Promotion chess.Kind
}

// IsCapture returns true if the move was written as a capture.
func (m Move) IsCapture() bool {
	return m.Class == CaptureMove
}

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// IsPromotion returns true if the move names a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != chess.NoKind
}

// Parser converts move text to moves. File letters are mapped relative to
// a base letter, which addresses file 1.
type Parser struct {
	base byte
}

// NewParser creates a parser using base as the letter of file 1.
func NewParser(base byte) *Parser {
	return &Parser{base: base}
}

// Parse parses text with the default base letter.
func Parse(text string) (Move, error) {
	return NewParser(chess.DefaultBaseLetter).Parse(text)
}

// Parse parses a single move. Trailing check and mate markers are ignored.
func (p *Parser) Parse(text string) (Move, error) {
	s := strings.TrimRight(strings.TrimSpace(text), "+#")
	if s == "" {
		return Move{}, parseError(text, 0, "move", "empty text")
	}

	switch s {
	case KingsideCastleText:
		return Move{Text: text, Class: KingsideCastle, Piece: chess.King}, nil
	case QueensideCastleText:
		return Move{Text: text, Class: QueensideCastle, Piece: chess.King}, nil
	}

	var (
		m   Move
		err error
	)
	switch i := strings.IndexByte(s, CaptureSeparator); {
	case i >= 0:
		m, err = p.parseCapture(s, i)
	case len(s) == 3 && p.isFile(s[0]) && isRank(s[1]) && isUpper(s[2]):
		m, err = p.parsePromotion(s)
	default:
		m, err = p.parsePlain(s)
	}
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.Text = text
		}
		return Move{}, err
	}
	m.Text = text
	return m, nil
}

// parseCapture parses "[Piece][file][rank]x<square>[Piece]".
func (p *Parser) parseCapture(s string, sep int) (Move, error) {
	m := Move{Class: CaptureMove}

	kind, prefix, err := pieceLetter(s[:sep])
	if err != nil {
		return Move{}, err
	}
	m.Piece = kind

	if err := p.parseDisambiguation(&m, prefix, sep-len(prefix)); err != nil {
		return Move{}, err
	}

	dest := s[sep+1:]
	if len(dest) == 3 {
		promo, err := promotionPiece(dest[2], sep+4)
		if err != nil {
			return Move{}, err
		}
		if m.Piece != chess.Pawn {
			return Move{}, parseError(s, sep+4, "end of move", "promotion suffix on a "+m.Piece.String())
		}
		m.Promotion = promo
		dest = dest[:2]
	}

	to, err := p.parseSquare(dest, sep+2)
	if err != nil {
		return Move{}, err
	}
	m.To = to
	return m, nil
}

// parsePromotion parses "<square><Piece>"; the source is the pawn directly
// behind the destination, which the engine resolves from the side to move.
func (p *Parser) parsePromotion(s string) (Move, error) {
	to, err := p.parseSquare(s[:2], 1)
	if err != nil {
		return Move{}, err
	}
	promo, err := promotionPiece(s[2], 3)
	if err != nil {
		return Move{}, err
	}
	return Move{
		Class:     PromotionMove,
		Piece:     chess.Pawn,
		FromFile:  to.File,
		To:        to,
		Promotion: promo,
	}, nil
}

// parsePlain parses "[Piece][file][rank]<square>".
func (p *Parser) parsePlain(s string) (Move, error) {
	m := Move{Class: PlainMove}

	kind, rest, err := pieceLetter(s)
	if err != nil {
		return Move{}, err
	}
	m.Piece = kind

	if len(rest) < 2 || len(rest) > 4 {
		return Move{}, parseError(s, 0, "destination square with at most two disambiguators", fmt.Sprintf("%d characters", len(rest)))
	}

	split := len(rest) - 2
	if err := p.parseDisambiguation(&m, rest[:split], offsetOf(s, rest)); err != nil {
		return Move{}, err
	}

	to, err := p.parseSquare(rest[split:], offsetOf(s, rest)+split+1)
	if err != nil {
		return Move{}, err
	}
	m.To = to
	return m, nil
}

// parseDisambiguation reads up to one file letter and one rank digit.
// offset is the 0-based position of prefix within the move text.
func (p *Parser) parseDisambiguation(m *Move, prefix string, offset int) error {
	if len(prefix) > 2 {
		return parseError(prefix, offset+1, "at most two disambiguators", prefix)
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case p.isFile(c) && m.FromFile == 0:
			m.FromFile = p.file(c)
		case isRank(c) && m.FromRank == 0:
			m.FromRank = int(c - '0')
		default:
			return parseError(prefix, offset+i+1, "file letter or rank digit", fmt.Sprintf("%q", c))
		}
	}
	return nil
}

// parseSquare reads a file letter and rank digit. pos is the 1-based
// position of the square in the move text.
func (p *Parser) parseSquare(s string, pos int) (chess.Square, error) {
	if len(s) != 2 {
		return chess.Square{}, parseError(s, pos, "square", fmt.Sprintf("%q", s))
	}
	if !p.isFile(s[0]) {
		return chess.Square{}, parseError(s, pos, "file letter", fmt.Sprintf("%q", s[0]))
	}
	if !isRank(s[1]) {
		return chess.Square{}, parseError(s, pos+1, "rank digit", fmt.Sprintf("%q", s[1]))
	}
	return chess.Sq(int(s[1]-'0'), p.file(s[0])), nil
}

func (p *Parser) isFile(c byte) bool {
	return c >= p.base && c < p.base+chess.BoardSize
}

func (p *Parser) file(c byte) int {
	return int(c-p.base) + 1
}

func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// pieceLetter splits an optional leading piece letter from s. Without one
// the mover is a pawn.
func pieceLetter(s string) (chess.Kind, string, error) {
	if s == "" || !isUpper(s[0]) {
		return chess.Pawn, s, nil
	}
	kind, ok := chess.KindFromLetter(s[0])
	if !ok {
		return chess.NoKind, "", parseError(s, 1, "piece letter", fmt.Sprintf("%q", s[0]))
	}
	return kind, s[1:], nil
}

// promotionPiece validates a promotion letter. Pawns and kings are refused.
func promotionPiece(c byte, pos int) (chess.Kind, error) {
	kind, ok := chess.KindFromLetter(c)
	if !ok || kind == chess.Pawn || kind == chess.King {
		return chess.NoKind, parseError(string(c), pos, "promotion piece (N, B, R, Q)", fmt.Sprintf("%q", c))
	}
	return kind, nil
}

// offsetOf returns the 0-based offset of the suffix sub within s.
func offsetOf(s, sub string) int {
	return len(s) - len(sub)
}

func parseError(text string, pos int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Text:     text,
		Pos:      pos,
		Expected: expected,
		Got:      got,
	}
}
