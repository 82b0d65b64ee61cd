package engine

import "github.com/lgbarn/schackmotor-go/internal/chess"

// Verdict is the result class of a legality evaluation.
type Verdict int

const (
	Illegal Verdict = iota
	LegalNoEffect
	LegalWithEffects
)

// String returns the string representation of a verdict.
func (v Verdict) String() string {
	switch v {
	case LegalNoEffect:
		return "Legal"
	case LegalWithEffects:
		return "LegalWithEffects"
	default:
		return "Illegal"
	}
}

// AdjustPiece is a deferred side effect bundled with a legal verdict. It is
// applied to the board only when the move is committed. Targets refer to the
// board after the mover has been relocated.
type AdjustPiece struct {
	Target             chess.Square
	MoveCountIncrement int
	RemoveOccupant     bool
}

// Outcome is the result of evaluating a candidate move.
type Outcome struct {
	Verdict Verdict
	Effects []AdjustPiece
}

// IsLegal reports whether the outcome allows the move, with or without effects.
func (o Outcome) IsLegal() bool {
	return o.Verdict != Illegal
}

// Removes reports whether applying the outcome empties sq.
func (o Outcome) Removes(sq chess.Square) bool {
	for _, e := range o.Effects {
		if e.RemoveOccupant && e.Target == sq {
			return true
		}
	}
	return false
}

// adjusts reports whether the outcome changes the move count on sq.
func (o Outcome) adjusts(sq chess.Square) bool {
	for _, e := range o.Effects {
		if e.MoveCountIncrement != 0 && e.Target == sq {
			return true
		}
	}
	return false
}

func illegal() Outcome {
	return Outcome{Verdict: Illegal}
}

func legal() Outcome {
	return Outcome{Verdict: LegalNoEffect}
}

func legalWith(effects ...AdjustPiece) Outcome {
	if len(effects) == 0 {
		return legal()
	}
	return Outcome{Verdict: LegalWithEffects, Effects: effects}
}

// bump is the effect adding n to the move count of the piece landing on sq.
func bump(sq chess.Square, n int) AdjustPiece {
	return AdjustPiece{Target: sq, MoveCountIncrement: n}
}

// remove is the effect clearing sq.
func remove(sq chess.Square) AdjustPiece {
	return AdjustPiece{Target: sq, RemoveOccupant: true}
}
