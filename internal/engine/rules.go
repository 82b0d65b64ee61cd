// Package engine provides chess move validation and board manipulation:
// the per-piece movement rules, check detection and the game state that
// turns move text into committed board transitions.
package engine

import (
	"fmt"

	"github.com/lgbarn/schackmotor-go/internal/chess"
)

// Evaluate decides whether piece may move from one square to another on
// board, as a capture or not. It never mutates the board; any extra board
// changes the move requires are returned as effects in the Outcome.
//
// Both squares must be on the board; anything else is a caller error.
func Evaluate(board *chess.Board, piece *chess.Piece, capture bool, from, to chess.Square) Outcome {
	if !from.Valid() || !to.Valid() {
		panic(fmt.Sprintf("engine: Evaluate(%v, %v) with off-board square", from, to))
	}

	switch piece.Kind {
	case chess.Pawn:
		return evaluatePawn(board, piece, capture, from, to)
	case chess.Rook:
		return evaluateRook(board, piece, capture, from, to)
	case chess.Knight:
		return evaluateKnight(board, piece, capture, from, to)
	case chess.Bishop:
		return evaluateBishop(board, piece, capture, from, to)
	case chess.Queen:
		return evaluateQueen(board, piece, capture, from, to)
	case chess.King:
		return evaluateKing(board, piece, capture, from, to)
	default:
		return illegal()
	}
}
