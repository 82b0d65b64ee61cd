package config

import (
	"fmt"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/errors"
	"github.com/lgbarn/schackmotor-go/internal/notation"
)

// RulesConfig holds settings for reading and validating moves.
type RulesConfig struct {
	// BaseLetter is the file letter that addresses file 1.
	BaseLetter byte

	// StartingSide moves first.
	StartingSide chess.Colour

	// VerifySelfCheck simulates every move for self-check, not only moves
	// made while already in check.
	VerifySelfCheck bool

	// Layout is the initial layout text given to Board.Populate.
	Layout string

	// FEN replaces Layout and StartingSide when set.
	FEN string
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		BaseLetter:   chess.DefaultBaseLetter,
		StartingSide: chess.White,
		Layout:       chess.StandardLayout,
	}
}

// Validate checks that the rules configuration is valid. The base letter
// must be lowercase, and the eight file letters it addresses may not reach
// the capture separator.
func (r *RulesConfig) Validate() error {
	last := r.BaseLetter + chess.BoardSize - 1
	if r.BaseLetter < 'a' || last > 'z' {
		return fmt.Errorf("base letter %q cannot address %d files: %w",
			r.BaseLetter, chess.BoardSize, errors.ErrInvalidConfig)
	}
	if r.BaseLetter <= notation.CaptureSeparator && last >= notation.CaptureSeparator {
		return fmt.Errorf("files %c-%c include the capture separator %q: %w",
			r.BaseLetter, last, notation.CaptureSeparator, errors.ErrInvalidConfig)
	}
	if r.StartingSide != chess.White && r.StartingSide != chess.Black {
		return fmt.Errorf("unknown starting side %d: %w", r.StartingSide, errors.ErrInvalidConfig)
	}
	return nil
}
