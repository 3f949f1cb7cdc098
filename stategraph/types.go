// Package stategraph defines the puzzle types, tunable options, and
// error definitions for the Tower of Hanoi state-graph solver.
package stategraph

import (
	"context"
	"errors"
	"fmt"
)

// maxPegs bounds the peg count so one configuration entry fits in a byte,
// keeping the canonical dedup key a straight byte packing.
const maxPegs = 255

// Sentinel errors for puzzle construction and exploration.
var (
	// ErrDiskCount is returned when the disk count is not positive.
	ErrDiskCount = errors.New("stategraph: number of disks must be positive")

	// ErrPegCount is returned when the peg count is below 2.
	ErrPegCount = errors.New("stategraph: number of pegs must be at least 2")

	// ErrTooManyPegs is returned when the peg count exceeds maxPegs.
	ErrTooManyPegs = errors.New("stategraph: number of pegs exceeds 255")

	// ErrConfigLength is returned when a configuration does not hold
	// exactly one peg entry per disk.
	ErrConfigLength = errors.New("stategraph: configuration length does not match disk count")

	// ErrPegOutOfRange is returned when a configuration entry is not a
	// valid peg index.
	ErrPegOutOfRange = errors.New("stategraph: configuration entry outside peg range")

	// ErrGoalUnreachable is returned when the frontier empties before the
	// goal configuration is settled. Unreachable for well-formed inputs
	// with at least 3 pegs; treated as fatal rather than ignorable.
	ErrGoalUnreachable = errors.New("stategraph: frontier exhausted before reaching goal")

	// ErrConfigNotFound is returned when a configuration has no vertex in
	// the graph (e.g. looked up before any exploration reached it).
	ErrConfigNotFound = errors.New("stategraph: configuration has no vertex")

	// ErrIllegalMove is returned by Apply when a move violates the rules.
	ErrIllegalMove = errors.New("stategraph: illegal move")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stategraph: invalid option supplied")
)

// Config assigns every disk to a peg: entry i is the 0-based peg index
// currently supporting disk i. Disks are indexed smallest-first, so disk i
// rests directly on top of any co-located disk with a greater index.
// Two configurations are equal iff they are element-wise equal.
type Config []int

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	copy(out, c)
	return out
}

// Equal reports element-wise equality of c and o.
func (c Config) Equal(o Config) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// key packs c into a compact string usable as a map key.
// Valid for peg indices below maxPegs, which New guarantees.
func (c Config) key() string {
	b := make([]byte, len(c))
	for i, p := range c {
		b[i] = byte(p)
	}
	return string(b)
}

// Move relocates the topmost disk of peg From to peg To.
// Pegs are 1-based here, matching the external presentation numbering.
type Move struct {
	From int
	To   int
}

// VertexID identifies a vertex within one StateGraph. IDs are assigned
// sequentially from 0 and are invalidated by the next Explore call.
type VertexID int

// NoVertex marks the absent predecessor of a start vertex.
const NoVertex VertexID = -1

// VisitState tracks BFS progress of a vertex.
// Transitions are monotonic: Unvisited → Frontier → Settled.
type VisitState uint8

const (
	// Unvisited vertices exist but have not been discovered by the search.
	Unvisited VisitState = iota
	// Frontier vertices are discovered and queued for expansion.
	Frontier
	// Settled vertices have had all their neighbors generated.
	Settled
)

// String renders the visit state for diagnostics.
func (s VisitState) String() string {
	switch s {
	case Unvisited:
		return "Unvisited"
	case Frontier:
		return "Frontier"
	case Settled:
		return "Settled"
	default:
		return fmt.Sprintf("VisitState(%d)", uint8(s))
	}
}

// Option configures Explore behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Explore is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize exploration.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex joins the frontier,
	// with its id and BFS depth. The start vertex fires at depth 0.
	OnEnqueue func(id VertexID, depth int)

	// OnDequeue is called when a vertex leaves the frontier for expansion.
	OnDequeue func(id VertexID, depth int)

	// OnSettle is called once all neighbors of a vertex were generated,
	// immediately before the goal check.
	OnSettle func(id VertexID, depth int)

	// CapacityHint pre-sizes the vertex arena and dedup index.
	// 0 lets Explore derive a bound from numPegs^numDisks.
	CapacityHint int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks
//   - derived capacity hint (CapacityHint == 0).
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnEnqueue:    func(VertexID, int) {},
		OnDequeue:    func(VertexID, int) {},
		OnSettle:     func(VertexID, int) {},
		CapacityHint: 0,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a vertex is discovered.
func WithOnEnqueue(fn func(id VertexID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a vertex is popped
// from the frontier.
func WithOnDequeue(fn func(id VertexID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnSettle registers a callback to run when a vertex is settled.
func WithOnSettle(fn func(id VertexID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithCapacityHint pre-sizes internal storage for n vertices.
//
//	n > 0: reserve space for n vertices up front
//	n == 0: derive a bound from the puzzle dimensions
//	n < 0: invalid option → ErrOptionViolation
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: CapacityHint cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.CapacityHint = n
		}
	}
}
