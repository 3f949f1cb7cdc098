// Package textio defines the wire types and sentinel errors for the
// textual puzzle encoding.
package textio

import (
	"errors"

	"github.com/katalvlaran/hanoigraph/stategraph"
)

// Sentinel errors for puzzle decoding.
var (
	// ErrUnexpectedEOF is returned when the input ends before all puzzle
	// fields were read.
	ErrUnexpectedEOF = errors.New("textio: puzzle input ended early")

	// ErrBadToken is returned when a token is not a valid integer.
	ErrBadToken = errors.New("textio: expected an integer token")

	// ErrCounts is returned when the disk or peg count is not positive.
	ErrCounts = errors.New("textio: disk and peg counts must be positive")
)

// Puzzle is one decoded puzzle instance. Start and Goal hold 0-based peg
// indices, already converted from the 1-based wire numbering.
type Puzzle struct {
	NumDisks int
	NumPegs  int
	Start    stategraph.Config
	Goal     stategraph.Config
}
