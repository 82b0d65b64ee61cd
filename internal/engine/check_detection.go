package engine

import "github.com/lgbarn/schackmotor-go/internal/chess"

// Threat describes a check: the attacked king and the first attacker found.
type Threat struct {
	King     chess.Square
	Attacker chess.Square
}

// KingInCheck reports whether the given colour's king is attacked. Every
// enemy piece's rule is evaluated as a capture onto the king's square; the
// first one that accepts is reported as the attacker. A board without a king
// of that colour is never in check.
func KingInCheck(board *chess.Board, colour chess.Colour) (Threat, bool) {
	kingSq, ok := findKing(board, colour)
	if !ok {
		return Threat{}, false
	}

	for _, attacker := range FindPieces(board, chess.NoKind, colour.Opposite(), 0, 0) {
		if attacker.Square == kingSq {
			continue
		}
		p := board.At(attacker.Square)
		if Evaluate(board, p, true, attacker.Square, kingSq).IsLegal() {
			return Threat{King: kingSq, Attacker: attacker.Square}, true
		}
	}

	return Threat{}, false
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	_, inCheck := KingInCheck(board, colour)
	return inCheck
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	kings := FindPieces(board, chess.King, colour, 0, 0)
	if len(kings) == 0 {
		return chess.Square{}, false
	}
	return kings[0].Square, true
}
