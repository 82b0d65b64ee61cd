package engine

import "github.com/lgbarn/schackmotor-go/internal/chess"

// commit applies a resolved move to a copy of board and returns the copy.
// The mover is relocated first, or replaced by a piece of the promotion kind
// carrying its move count, then the outcome's effects are applied: move
// count increments before removals. Unless an effect already adjusted the
// destination, the mover's count is bumped by one.
func commit(board *chess.Board, from, to chess.Square, promotion chess.Kind, out Outcome) *chess.Board {
	next := board.Copy()

	mover := next.At(from)
	if promotion != chess.NoKind {
		if promoted, ok := next.Prototypes.New(promotion.Letter(), mover.Colour()); ok {
			promoted.MoveCount = mover.MoveCount
			mover = promoted
		}
	}
	next.Clear(from)
	next.Set(to, mover)

	for _, e := range out.Effects {
		if e.MoveCountIncrement == 0 {
			continue
		}
		if p := next.At(e.Target); p != nil {
			p.AdjustMoveCount(e.MoveCountIncrement)
		}
	}
	for _, e := range out.Effects {
		if e.RemoveOccupant {
			next.Clear(e.Target)
		}
	}

	if !out.adjusts(to) {
		mover.AdjustMoveCount(1)
	}

	return next
}

// ageDoubleStep moves the pawn that double stepped on sq past the en
// passant mark once its opponent has replied. Nothing happens when the
// pawn has since left or been captured.
func ageDoubleStep(board *chess.Board, sq *chess.Square, owner chess.Colour) {
	if sq == nil {
		return
	}
	if p := board.At(*sq); p.Is(chess.Pawn, owner) && p.AdjustMoveCount(0) == DoubleStepMark {
		p.AdjustMoveCount(1)
	}
}

// doubleStepTarget returns the square of a pawn the outcome marks as having
// just double stepped, if any.
func doubleStepTarget(out Outcome) *chess.Square {
	for _, e := range out.Effects {
		if e.MoveCountIncrement == DoubleStepMark {
			sq := e.Target
			return &sq
		}
	}
	return nil
}
