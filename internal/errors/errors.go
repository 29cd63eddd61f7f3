// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOffBoard indicates an operation on a piece that has been captured.
	ErrOffBoard = errors.New("piece is not on the board")

	// ErrOccupiedSquare indicates setup tried to add a piece onto an occupied square.
	ErrOccupiedSquare = errors.New("square is occupied")

	// ErrInvalidDestination indicates a move outside the piece's legal move set.
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrNotation indicates text that is not valid algebraic notation.
	ErrNotation = errors.New("unparsable notation")

	// ErrInvalidSetup indicates a malformed setup token.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrWrongColour indicates a player tried to move an opponent's piece.
	ErrWrongColour = errors.New("piece belongs to the other side")

	// ErrNoMoreMoves indicates a scripted player ran out of moves.
	ErrNoMoreMoves = errors.New("no more moves")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the moving piece and the
// squares involved. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Piece description, e.g. "White Rook"
	From  string // Departure square (if known)
	To    string // Destination square (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" {
		parts = append(parts, "from "+e.From)
	}
	if e.To != "" {
		parts = append(parts, "to "+e.To)
	}

	context := strings.Join(parts, " ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation or setup parsing error with the
// offending input and column.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
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

// Is reports whether any error in err's chain matches target. It lets
// callers importing this package use errors.Is without a second import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
