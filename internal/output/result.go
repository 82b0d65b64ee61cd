// Package output writes replay results as text or JSON and renders boards
// as ASCII diagrams or SVG.
package output

import (
	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// Status labels for a move result.
const (
	StatusOK                   = "ok"
	StatusParseFailure         = "parse-failure"
	StatusMissingSource        = "missing-source"
	StatusAmbiguousSource      = "ambiguous-source"
	StatusIllegal              = "illegal"
	StatusSelfCheck            = "self-check"
	StatusCastlingPrerequisite = "castling-prerequisite"
	StatusError                = "error"
)

// MoveResult is the outcome of one submitted move.
type MoveResult struct {
	Ply    int    `json:"ply"`
	Side   string `json:"side"`
	Move   string `json:"move"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	FEN    string `json:"fen"`
	Line   uint   `json:"line,omitempty"`
}

// OK reports whether the move was applied.
func (m MoveResult) OK() bool {
	return m.Status == StatusOK
}

// ScriptResult is the outcome of replaying one script.
type ScriptResult struct {
	Name     string       `json:"name,omitempty"`
	Number   int          `json:"number"`
	StartFEN string       `json:"startFEN,omitempty"`
	Moves    []MoveResult `json:"moves"`
	Applied  int          `json:"applied"`
	Rejected int          `json:"rejected"`
	FinalFEN string       `json:"finalFEN,omitempty"`
	Error    string       `json:"error,omitempty"`

	// Board is the final position; it is rendered, not serialised.
	Board *chess.Board `json:"-"`
}

// Add records a move result and updates the counters.
func (r *ScriptResult) Add(m MoveResult) {
	r.Moves = append(r.Moves, m)
	if m.OK() {
		r.Applied++
	} else {
		r.Rejected++
	}
}

// Status maps an Apply error to its status label.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, errors.ErrParseFailure):
		return StatusParseFailure
	case errors.Is(err, errors.ErrMissingSource):
		return StatusMissingSource
	case errors.Is(err, errors.ErrAmbiguousSource):
		return StatusAmbiguousSource
	case errors.Is(err, errors.ErrSelfCheck):
		return StatusSelfCheck
	case errors.Is(err, errors.ErrCastlingPrerequisite):
		return StatusCastlingPrerequisite
	case errors.Is(err, errors.ErrIllegalMove):
		return StatusIllegal
	default:
		return StatusError
	}
}
