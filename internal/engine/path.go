package engine

import "github.com/lgbarn/schackmotor-go/internal/chess"

// isPathClear reports whether every square strictly between from and to is
// empty. The caller guarantees the squares share a rank, a file or a diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	sq := chess.Sq(from.Rank+rankDir, from.File+fileDir)
	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = chess.Sq(sq.Rank+rankDir, sq.File+fileDir)
	}

	return true
}

// isStraight reports whether from and to share a rank or a file.
func isStraight(from, to chess.Square) bool {
	return from != to && (from.Rank == to.Rank || from.File == to.File)
}

// isDiagonal reports whether from and to share a diagonal.
func isDiagonal(from, to chess.Square) bool {
	dr := abs(to.Rank - from.Rank)
	return dr != 0 && dr == abs(to.File-from.File)
}
