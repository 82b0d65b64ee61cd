package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board decoded from FEN together with the state the board
// itself does not carry.
type Position struct {
	Board  *chess.Board
	ToMove chess.Colour

	// Pending is the pawn that has just double stepped, if any.
	Pending *chess.Square

	// FullMove is the move number of the next move.
	FullMove int
}

// ParseFEN decodes a FEN string. Move counts are not part of FEN, so they
// are derived: pawns off their starting rank count as moved, kings and
// rooks count as unmoved only while a castling right needs them, and the
// pawn behind the en passant target carries the double step mark. The
// halfmove clock is ignored.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &Position{Board: chess.NewBoard(), ToMove: chess.White, FullMove: 1}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos.Board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	parseFullMove(pos, parts)

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank, file := chess.LastRank, chess.FirstFile

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.LastFile+1 {
				return fmt.Errorf("rank %d has %d files: %w", rank, file-1, errors.ErrInvalidFEN)
			}
			rank--
			file = chess.FirstFile
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			p, ok := board.Prototypes.New(byte(unicode.ToUpper(c)), colour)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.Sq(rank, file)
			if !sq.Valid() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			if p.Kind == chess.Pawn && rank != pawnRank(colour) {
				p.MoveCount = 1
			}
			if p.Kind == chess.King || p.Kind == chess.Rook {
				// Unmoved only if a castling right says so.
				p.MoveCount = 1
			}
			board.Set(sq, p)
			file++
		}
	}
	if rank != chess.FirstRank || file != chess.LastFile+1 {
		return fmt.Errorf("placement %q does not cover the board: %w", positions, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights marks the king and rook each right depends on as unmoved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var rookFile int
		switch c {
		case 'K':
			colour, rookFile = chess.White, chess.LastFile
		case 'Q':
			colour, rookFile = chess.White, chess.FirstFile
		case 'k':
			colour, rookFile = chess.Black, chess.LastFile
		case 'q':
			colour, rookFile = chess.Black, chess.FirstFile
		default:
			return fmt.Errorf("invalid castling right %q: %w", c, errors.ErrInvalidFEN)
		}

		home := colour.HomeRank()
		if rook := board.At(chess.Sq(home, rookFile)); rook.Is(chess.Rook, colour) {
			rook.MoveCount = 0
		}
		for _, k := range FindPieces(board, chess.King, colour, home, 0) {
			board.At(k.Square).MoveCount = 0
		}
	}
	return nil
}

// parseEnPassant marks the pawn that passed over the target square.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.SquareFromName(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := pos.ToMove.Opposite()
	sq := chess.Sq(target.Rank+mover.Forward(), target.File)
	if !sq.Valid() || target.Rank != pawnRank(mover)+mover.Forward() {
		return fmt.Errorf("en passant square %v is not behind a double step: %w", target, errors.ErrInvalidFEN)
	}
	pawn := pos.Board.At(sq)
	if !pawn.Is(chess.Pawn, mover) {
		return fmt.Errorf("no %v pawn in front of en passant square %v: %w", mover, target, errors.ErrInvalidFEN)
	}
	pawn.MoveCount = DoubleStepMark
	pos.Pending = &sq
	return nil
}

// parseFullMove parses the fullmove number field.
func parseFullMove(pos *Position, parts []string) {
	if len(parts) < 6 {
		return
	}
	if n, err := strconv.Atoi(parts[5]); err == nil && n > 0 {
		pos.FullMove = n
	}
}

// pawnRank returns the rank a colour's pawns start on.
func pawnRank(c chess.Colour) int {
	return c.HomeRank() + c.Forward()
}

// BoardToFEN converts a board to a FEN string. Castling rights and the en
// passant target are derived from move counts.
func BoardToFEN(board *chess.Board, toMove chess.Colour, pending *chess.Square) string {
	return formatFEN(board, toMove, pending, 1)
}

func formatFEN(board *chess.Board, toMove chess.Colour, pending *chess.Square, fullMove int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, pending)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "0 %d", fullMove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p := board.Get(rank, file)
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, right := range []struct {
			rookFile int
			letter   byte
		}{{chess.LastFile, 'K'}, {chess.FirstFile, 'Q'}} {
			if canStillCastle(board, colour, right.rookFile) {
				letter := right.letter
				if colour == chess.Black {
					letter = byte(unicode.ToLower(rune(letter)))
				}
				sb.WriteByte(letter)
				hasCastling = true
			}
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// canStillCastle reports whether an unmoved king and an unmoved rook on
// rookFile share the colour's home rank.
func canStillCastle(board *chess.Board, colour chess.Colour, rookFile int) bool {
	home := colour.HomeRank()
	rook := board.At(chess.Sq(home, rookFile))
	if !rook.Is(chess.Rook, colour) || rook.MoveCount != 0 {
		return false
	}
	for _, k := range FindPieces(board, chess.King, colour, home, 0) {
		if board.At(k.Square).MoveCount == 0 {
			return true
		}
	}
	return false
}

// writeEnPassant writes the square behind a pawn that just double stepped.
func writeEnPassant(sb *strings.Builder, board *chess.Board, pending *chess.Square) {
	if pending != nil {
		if p := board.At(*pending); p != nil && p.Kind == chess.Pawn && p.MoveCount == DoubleStepMark {
			sb.WriteString(chess.Sq(pending.Rank-p.Colour().Forward(), pending.File).String())
			return
		}
	}
	sb.WriteByte('-')
}
