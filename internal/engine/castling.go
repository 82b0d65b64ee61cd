package engine

import (
	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// Castling records the squares a castling move relocates.
type Castling struct {
	KingFrom chess.Square
	KingTo   chess.Square
	RookFrom chess.Square
	RookTo   chess.Square
}

// castle validates castling for colour on board and returns a new board
// with the king moved two files towards the rook and the rook placed on
// the square the king crossed. Both pieces have their move counts bumped.
// The board passed in is never modified.
//
// Castling bypasses the piece rules. It requires an unmoved king and
// corner rook on the same rank, empty squares between them, a king not in
// check, and no attacked square on the king's path, destination included.
func castle(board *chess.Board, colour chess.Colour, kingside bool) (*chess.Board, Castling, error) {
	kings := FindPieces(board, chess.King, colour, 0, 0)
	if len(kings) != 1 {
		return nil, Castling{}, errors.Wrapf(errors.ErrCastlingPrerequisite, "%d %v kings on the board", len(kings), colour)
	}
	kingSq := kings[0].Square
	if board.At(kingSq).AdjustMoveCount(0) != 0 {
		return nil, Castling{}, errors.Wrap(errors.ErrCastlingPrerequisite, "king has moved")
	}

	dir, rookFile := 1, chess.LastFile
	if !kingside {
		dir, rookFile = -1, chess.FirstFile
	}

	rookSq := chess.Sq(kingSq.Rank, rookFile)
	rook := board.At(rookSq)
	if !rook.Is(chess.Rook, colour) {
		return nil, Castling{}, errors.Wrapf(errors.ErrCastlingPrerequisite, "no rook on %v", rookSq)
	}
	if rook.AdjustMoveCount(0) != 0 {
		return nil, Castling{}, errors.Wrap(errors.ErrCastlingPrerequisite, "rook has moved")
	}

	kingTo := chess.Sq(kingSq.Rank, kingSq.File+2*dir)
	if !kingTo.Valid() || (rookFile-kingTo.File)*dir <= 0 {
		return nil, Castling{}, errors.Wrapf(errors.ErrCastlingPrerequisite, "no room for the king between %v and %v", kingSq, rookSq)
	}

	for f := kingSq.File + dir; f != rookFile; f += dir {
		if sq := chess.Sq(kingSq.Rank, f); !board.IsEmpty(sq) {
			return nil, Castling{}, errors.Wrapf(errors.ErrCastlingPrerequisite, "%v is occupied", sq)
		}
	}

	if IsInCheck(board, colour) {
		return nil, Castling{}, errors.Wrap(errors.ErrCastlingPrerequisite, "king is in check")
	}

	for f := kingSq.File + dir; ; f += dir {
		transit := chess.Sq(kingSq.Rank, f)
		sim := board.Copy()
		sim.Move(kingSq, transit)
		if IsInCheck(sim, colour) {
			return nil, Castling{}, errors.Wrapf(errors.ErrCastlingPrerequisite, "king would cross attacked square %v", transit)
		}
		if transit == kingTo {
			break
		}
	}

	c := Castling{
		KingFrom: kingSq,
		KingTo:   kingTo,
		RookFrom: rookSq,
		RookTo:   chess.Sq(kingSq.Rank, kingTo.File-dir),
	}

	next := board.Copy()
	next.Move(c.KingFrom, c.KingTo)
	next.Move(c.RookFrom, c.RookTo)
	next.At(c.KingTo).AdjustMoveCount(1)
	next.At(c.RookTo).AdjustMoveCount(1)

	return next, c, nil
}
