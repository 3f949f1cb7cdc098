// Package stategraph models generalized Tower of Hanoi configurations as
// vertices of an implicit undirected graph, discovered lazily during a
// breadth-first search.
package stategraph

import (
	"fmt"
	"sort"
)

// vertex is one unique discovered configuration.
// distance, pred, and lastMove are set exactly once, when the vertex
// transitions from Unvisited to Frontier, and never change afterward.
type vertex struct {
	config    Config
	state     VisitState
	distance  int
	pred      VertexID
	lastMove  Move // 1-based pegs; zero for a start vertex
	neighbors map[VertexID]struct{}
}

// StateGraph owns the set of discovered configurations for one puzzle
// instance. Vertices are kept in an arena indexed by VertexID and
// deduplicated through a hash index keyed by the canonical configuration
// encoding, so each configuration maps to at most one vertex.
//
// A StateGraph must not be shared across goroutines; distinct instances
// are fully independent.
type StateGraph struct {
	numDisks int
	numPegs  int
	vertices []vertex
	index    map[string]VertexID
}

// New constructs an empty StateGraph for puzzles with numDisks disks and
// numPegs pegs. Returns ErrDiskCount, ErrPegCount, or ErrTooManyPegs on
// malformed dimensions.
func New(numDisks, numPegs int) (*StateGraph, error) {
	if numDisks < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDiskCount, numDisks)
	}
	if numPegs < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPegCount, numPegs)
	}
	if numPegs > maxPegs {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyPegs, numPegs)
	}
	g := &StateGraph{numDisks: numDisks, numPegs: numPegs}
	g.reset(0)

	return g, nil
}

// NumDisks returns the disk count the graph was built for.
func (g *StateGraph) NumDisks() int { return g.numDisks }

// NumPegs returns the peg count the graph was built for.
func (g *StateGraph) NumPegs() int { return g.numPegs }

// Len returns the number of vertices discovered so far.
func (g *StateGraph) Len() int { return len(g.vertices) }

// reset discards all vertices and pre-sizes storage for hint vertices;
// hint 0 derives a bound from the puzzle dimensions.
func (g *StateGraph) reset(hint int) {
	if hint == 0 {
		hint = g.stateBound(defaultCapacityCap)
	}
	g.vertices = make([]vertex, 0, hint)
	g.index = make(map[string]VertexID, hint)
}

// defaultCapacityCap caps the derived pre-allocation; the arena still
// grows past it when the reachable state space is larger.
const defaultCapacityCap = 1 << 16

// stateBound returns min(numPegs^numDisks, limit), computed without overflow.
func (g *StateGraph) stateBound(limit int) int {
	n := 1
	for i := 0; i < g.numDisks; i++ {
		n *= g.numPegs
		if n >= limit {
			return limit
		}
	}
	return n
}

// getOrCreate looks cfg up by value and returns its vertex id, creating a
// fresh Unvisited vertex on first encounter. Always succeeds.
// The caller must hand over ownership of cfg (no later mutation).
func (g *StateGraph) getOrCreate(cfg Config) VertexID {
	k := cfg.key()
	if id, ok := g.index[k]; ok {
		return id
	}
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertex{
		config:    cfg,
		state:     Unvisited,
		pred:      NoVertex,
		neighbors: make(map[VertexID]struct{}),
	})
	g.index[k] = id

	return id
}

// link records the undirected edge u–v on both endpoints.
// Reports whether the edge was traversed for the first time.
func (g *StateGraph) link(u, v VertexID) bool {
	if _, ok := g.vertices[u].neighbors[v]; ok {
		return false
	}
	g.vertices[u].neighbors[v] = struct{}{}
	g.vertices[v].neighbors[u] = struct{}{}

	return true
}

// validateConfig checks cfg against the graph dimensions.
// Returns ErrConfigLength or ErrPegOutOfRange on violation.
func (g *StateGraph) validateConfig(cfg Config) error {
	if len(cfg) != g.numDisks {
		return fmt.Errorf("%w: got %d entries, want %d", ErrConfigLength, len(cfg), g.numDisks)
	}
	for disk, peg := range cfg {
		if peg < 0 || peg >= g.numPegs {
			return fmt.Errorf("%w: disk %d on peg %d, want [0,%d)", ErrPegOutOfRange, disk, peg, g.numPegs)
		}
	}

	return nil
}

// Vertex returns the id of the vertex representing cfg, or
// ErrConfigNotFound if no such configuration was ever discovered.
// Lookup only; never creates.
func (g *StateGraph) Vertex(cfg Config) (VertexID, error) {
	if id, ok := g.index[cfg.key()]; ok {
		return id, nil
	}
	return NoVertex, fmt.Errorf("%w: %v", ErrConfigNotFound, []int(cfg))
}

// ConfigAt returns a copy of the configuration represented by id.
func (g *StateGraph) ConfigAt(id VertexID) Config {
	return g.vertices[id].config.Clone()
}

// Distance returns the BFS depth of id from the start vertex.
// Meaningful only once the vertex left Unvisited.
func (g *StateGraph) Distance(id VertexID) int {
	return g.vertices[id].distance
}

// Predecessor returns the vertex from which id was first discovered,
// or NoVertex for the start vertex.
func (g *StateGraph) Predecessor(id VertexID) VertexID {
	return g.vertices[id].pred
}

// LastMove returns the single-disk move that produced id from its
// predecessor. Undefined (zero) for the start vertex.
func (g *StateGraph) LastMove(id VertexID) Move {
	return g.vertices[id].lastMove
}

// VisitStateAt returns the BFS progress marker of id.
func (g *StateGraph) VisitStateAt(id VertexID) VisitState {
	return g.vertices[id].state
}

// Neighbors returns the ids connected to id by one legal disk move,
// sorted ascending for reproducibility.
func (g *StateGraph) Neighbors(id VertexID) []VertexID {
	set := g.vertices[id].neighbors
	out := make([]VertexID, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
