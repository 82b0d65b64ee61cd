// Package errors provides sentinel errors and error types for the move
// legality engine. It defines the rejection categories a move can fall into
// and structured error types that preserve context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrParseFailure indicates malformed or unrecognized move text.
	ErrParseFailure = errors.New("parse failure")

	// ErrUnresolvedSource indicates the source square of a move could not be
	// resolved. ErrMissingSource and ErrAmbiguousSource both match it.
	ErrUnresolvedSource = errors.New("unresolved source square")

	// ErrMissingSource indicates no candidate piece matched the move.
	ErrMissingSource = fmt.Errorf("no candidate piece: %w", ErrUnresolvedSource)

	// ErrAmbiguousSource indicates more than one candidate piece could make the move.
	ErrAmbiguousSource = fmt.Errorf("ambiguous candidate pieces: %w", ErrUnresolvedSource)

	// ErrIllegalMove indicates the piece's movement rule rejects the move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSelfCheck indicates the move would leave, or fail to resolve, check on the mover's king.
	ErrSelfCheck = errors.New("king left in check")

	// ErrCastlingPrerequisite indicates a moved king or rook, a blocked path,
	// a current check or an attacked transit square.
	ErrCastlingPrerequisite = errors.New("castling prerequisite unmet")

	// ErrInvalidLayout indicates a malformed initial layout description.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidScript indicates a malformed move script.
	ErrInvalidScript = errors.New("invalid move script")
)

// MoveError wraps a move rejection with its context. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move was submitted at
	MoveText string // The move text that was rejected
	Side     string // Side to move when the move was submitted (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ScriptError wraps errors with move script context: the source file, the
// script number within it and the line the problem was found on.
type ScriptError struct {
	Err    error  // The underlying error
	File   string // Source file name (if known)
	Script int    // 1-based script number in the file
	Line   int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *ScriptError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Script > 0 {
		parts = append(parts, fmt.Sprintf("script %d", e.Script))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// ParseError represents a move text parsing error with position context.
type ParseError struct {
	Err      error  // The underlying error
	Text     string // The full text being parsed
	Pos      int    // 1-based character position (0 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Text != "" {
		loc := fmt.Sprintf("%q", e.Text)
		if e.Pos > 0 {
			loc += fmt.Sprintf(" at %d", e.Pos)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target. It saves
// callers from importing both this package and the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
