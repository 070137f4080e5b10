// Package errors provides sentinel errors and error types for the rules engine.
// It defines the closed set of move and coordinate failures and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for coordinate parsing.
var (
	// ErrRankParse indicates a rank outside 1..8.
	ErrRankParse = errors.New("invalid rank")

	// ErrFileParse indicates a file outside A..H.
	ErrFileParse = errors.New("invalid file")

	// ErrParseFailure indicates malformed coordinate or move text.
	ErrParseFailure = errors.New("parse failure")
)

// Sentinel errors for the move pipeline.
// Use these with errors.Is() to check for a specific rejection reason.
var (
	// ErrEmptyStartingSquare indicates there is no troop on the source square.
	ErrEmptyStartingSquare = errors.New("starting square is empty")

	// ErrNotYourTurn indicates the troop's colour may not move in the current state.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrFriendlyFire indicates the destination holds a troop of the mover's colour.
	ErrFriendlyFire = errors.New("friendly fire is not allowed")

	// ErrIllegalMove is the family of geometry failures. ErrInvalidPath,
	// ErrPathIsBlocked and ErrNoMotion all match it through MoveError.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPath indicates the destination is not on the troop's movement pattern.
	ErrInvalidPath = errors.New("invalid path")

	// ErrPathIsBlocked indicates the destination is on the pattern but obstructed.
	ErrPathIsBlocked = errors.New("path is blocked")

	// ErrNoMotion indicates the source and destination are the same square.
	ErrNoMotion = errors.New("no motion")

	// ErrMoveIntoCheck indicates the move would leave the mover's king attacked.
	ErrMoveIntoCheck = errors.New("move leaves king in check")
)

// Other sentinel errors.
var (
	// ErrSquareOccupied indicates a troop was placed on an occupied square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownGame indicates a session lookup for an unregistered game.
	ErrUnknownGame = errors.New("unknown game")
)

// MoveError describes a rejected move. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // One of the move sentinels
	From   string // Source square, e.g. "e2"
	To     string // Destination square
	Piece  string // The moving piece, empty if there was none
	Reason string // Optional detail for ErrInvalidPath
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	move := e.From + "-" + e.To
	if e.Piece != "" {
		move = e.Piece + " " + move
	}
	parts = append(parts, move)

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying sentinel.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether the error belongs to the ErrIllegalMove family.
func (e *MoveError) Is(target error) bool {
	if target != ErrIllegalMove {
		return false
	}
	switch e.Err {
	case ErrInvalidPath, ErrPathIsBlocked, ErrNoMotion:
		return true
	}
	return false
}

// GameError wraps errors with game context, including game number,
// ply position, and move information.
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in a batch (0 if not applicable)
	PlyNum   int    // 1-based ply number where the error occurred
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
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
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to parse coordinate or move text.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The text being parsed
	Column int    // 1-based offending column (0 if unknown)
}

// Error returns a formatted error message with the offending input.
func (e *ParseError) Error() string {
	loc := fmt.Sprintf("%q", e.Input)
	if e.Column > 0 {
		loc += fmt.Sprintf(" at column %d", e.Column)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc + ": parse error"
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
