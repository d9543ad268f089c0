package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNoAgent indicates the input carries no agent marker.
	ErrNoAgent = errors.New("grid: no agent marker found")
	// ErrMultipleAgents indicates more than one agent marker.
	ErrMultipleAgents = errors.New("grid: more than one agent marker")
	// ErrUnknownCell indicates a rune that is not part of the text format.
	ErrUnknownCell = errors.New("grid: unknown cell")
	// ErrOutOfBounds indicates a point outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrStartBlocked indicates the agent would start on an obstacle.
	ErrStartBlocked = errors.New("grid: start position holds an obstacle")
)

// ParseError reports where in the input a parse failure happened.
// Line and Column are 1-based; zero means the location is unknown or
// the failure concerns the input as a whole.
type ParseError struct {
	Line   int
	Column int
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s (line %d, column %d)", msg, e.Line, e.Column)
	case e.Line > 0:
		return fmt.Sprintf("%s (line %d)", msg, e.Line)
	default:
		return msg
	}
}

// Unwrap returns the sentinel error, so errors.Is(err, ErrNoAgent) works.
func (e *ParseError) Unwrap() error {
	return e.Err
}
