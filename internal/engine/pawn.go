package engine

import "github.com/lgbarn/schackmotor-go/internal/chess"

// DoubleStepMark is the move count a pawn carries right after a double step.
// En passant detection keys off this exact value.
const DoubleStepMark = 2

// evaluatePawn applies the pawn rule: single and double steps forward when
// not capturing, diagonal captures and en passant when capturing.
func evaluatePawn(board *chess.Board, pawn *chess.Piece, capture bool, from, to chess.Square) Outcome {
	dir := pawn.Colour().Forward()
	rankDiff := to.Rank - from.Rank
	fileDiff := to.File - from.File

	// Pawns never move backwards or sideways
	if rankDiff*dir <= 0 {
		return illegal()
	}

	if !capture {
		if fileDiff != 0 || !board.IsEmpty(to) {
			return illegal()
		}

		// Single step
		if rankDiff == dir {
			return legal()
		}

		// Double step from the unmoved state, marking the pawn for en passant
		if rankDiff == 2*dir && pawn.AdjustMoveCount(0) == 0 &&
			board.IsEmpty(chess.Sq(from.Rank+dir, from.File)) {
			return legalWith(bump(to, DoubleStepMark))
		}
		return illegal()
	}

	if rankDiff != dir || abs(fileDiff) != 1 {
		return illegal()
	}

	if target := board.At(to); target != nil {
		if target.Colour() == pawn.Colour() {
			return illegal()
		}
		return legal()
	}

	return evaluateEnPassant(board, pawn, from, to)
}

// evaluateEnPassant checks the en passant capture onto the empty square to.
// The capturing pawn must stand on its fifth rank next to an enemy pawn that
// has just double stepped; the captured pawn is removed as a side effect.
func evaluateEnPassant(board *chess.Board, pawn *chess.Piece, from, to chess.Square) Outcome {
	fifth := 5
	if pawn.Colour() == chess.Black {
		fifth = 4
	}
	if from.Rank != fifth {
		return illegal()
	}

	beside := chess.Sq(from.Rank, to.File)
	victim := board.At(beside)
	if !victim.Is(chess.Pawn, pawn.Colour().Opposite()) || victim.AdjustMoveCount(0) != DoubleStepMark {
		return illegal()
	}

	return legalWith(remove(beside))
}
