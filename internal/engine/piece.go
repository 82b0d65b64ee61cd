package engine

import "github.com/lgbarn/schackmotor-go/internal/chess"

// evaluateRook applies the rook rule. A sideways move also bumps the rook's
// own move count, which castling eligibility reads later.
func evaluateRook(board *chess.Board, rook *chess.Piece, capture bool, from, to chess.Square) Outcome {
	if !isStraight(from, to) || !isPathClear(board, from, to) {
		return illegal()
	}

	target := board.At(to)
	if capture {
		if target == nil || target.Colour() == rook.Colour() {
			return illegal()
		}
	} else if target != nil {
		return illegal()
	}

	if from.Rank == to.Rank {
		return legalWith(bump(to, 1))
	}
	return legal()
}

// evaluateKnight applies the knight rule. An occupied destination requires a capture.
func evaluateKnight(board *chess.Board, _ *chess.Piece, capture bool, from, to chess.Square) Outcome {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)

	if !(rankDiff == 1 && fileDiff == 2) && !(rankDiff == 2 && fileDiff == 1) {
		return illegal()
	}
	if !board.IsEmpty(to) && !capture {
		return illegal()
	}
	return legal()
}

// evaluateBishop applies the bishop rule. Destination occupancy must match
// the capture flag exactly.
func evaluateBishop(board *chess.Board, _ *chess.Piece, capture bool, from, to chess.Square) Outcome {
	if board.IsEmpty(to) == capture {
		return illegal()
	}
	if !isDiagonal(from, to) || !isPathClear(board, from, to) {
		return illegal()
	}
	return legal()
}

// evaluateQueen accepts whatever the rook or the bishop rule accepts.
func evaluateQueen(board *chess.Board, queen *chess.Piece, capture bool, from, to chess.Square) Outcome {
	if out := evaluateRook(board, queen, capture, from, to); out.IsLegal() {
		return out
	}
	return evaluateBishop(board, queen, capture, from, to)
}

// evaluateKing applies the king rule: one square in any direction. The king's
// own move count is bumped so castling eligibility sees that it moved.
func evaluateKing(board *chess.Board, _ *chess.Piece, capture bool, from, to chess.Square) Outcome {
	if abs(to.Rank-from.Rank) > 1 || abs(to.File-from.File) > 1 {
		return illegal()
	}
	if !board.IsEmpty(to) && !capture {
		return illegal()
	}
	return legalWith(bump(to, 1))
}
