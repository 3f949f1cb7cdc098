package stategraph

import (
	"fmt"
)

// topmost reports whether disk is the smallest disk on its peg in cfg,
// i.e. no smaller disk (lower index) shares the peg.
func topmost(cfg Config, disk int) bool {
	for i := disk - 1; i >= 0; i-- {
		if cfg[i] == cfg[disk] {
			return false
		}
	}
	return true
}

// pegHasSmaller reports whether peg holds any disk smaller than disk,
// which would make it an illegal destination.
func pegHasSmaller(cfg Config, disk, peg int) bool {
	for i := disk - 1; i >= 0; i-- {
		if cfg[i] == peg {
			return true
		}
	}
	return false
}

// Apply replays one move (1-based pegs) against cfg and returns the
// resulting configuration, leaving cfg untouched. The move must relocate
// the topmost disk of a non-empty source peg onto a peg holding no
// smaller disk; anything else is rejected with ErrIllegalMove.
func (g *StateGraph) Apply(cfg Config, mv Move) (Config, error) {
	if err := g.validateConfig(cfg); err != nil {
		return nil, err
	}
	from, to := mv.From-1, mv.To-1
	if from < 0 || from >= g.numPegs || to < 0 || to >= g.numPegs {
		return nil, fmt.Errorf("%w: pegs %d→%d outside [1,%d]", ErrIllegalMove, mv.From, mv.To, g.numPegs)
	}
	if from == to {
		return nil, fmt.Errorf("%w: source and destination peg are both %d", ErrIllegalMove, mv.From)
	}

	// the moving disk is the smallest one on the source peg
	disk := -1
	for i := 0; i < len(cfg); i++ {
		if cfg[i] == from {
			disk = i
			break
		}
	}
	if disk < 0 {
		return nil, fmt.Errorf("%w: peg %d is empty", ErrIllegalMove, mv.From)
	}
	if pegHasSmaller(cfg, disk, to) {
		return nil, fmt.Errorf("%w: peg %d holds a disk smaller than disk %d", ErrIllegalMove, mv.To, disk)
	}

	next := cfg.Clone()
	next[disk] = to

	return next, nil
}

// MovesTo reconstructs the move sequence from the start of the last
// Explore to goal, in chronological order. The predecessor chain is
// walked backwards from the goal vertex and the collected moves are
// reversed; the result length equals the goal's reported distance.
// Returns ErrConfigNotFound if goal was never discovered.
func (g *StateGraph) MovesTo(goal Config) ([]Move, error) {
	id, err := g.Vertex(goal)
	if err != nil {
		return nil, err
	}

	moves := make([]Move, 0, g.vertices[id].distance)
	for cur := id; g.vertices[cur].pred != NoVertex; cur = g.vertices[cur].pred {
		moves = append(moves, g.vertices[cur].lastMove)
	}
	// reverse into chronological order
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves, nil
}
