// Package stategraph solves the generalized Tower of Hanoi puzzle
// (arbitrary disk and peg counts) by breadth-first search over an
// implicitly defined undirected graph of puzzle configurations.
//
// What
//
//   - A Config assigns every disk a peg; each distinct Config is one vertex.
//   - Vertices and edges are synthesized lazily during the search: from a
//     dequeued configuration, every legal single-disk move yields a
//     neighbor, deduplicated through a hash index over the canonical
//     configuration encoding (O(1) amortized lookup).
//   - Explore(start, goal) returns the minimum move count; MovesTo(goal)
//     reconstructs the move sequence from the recorded predecessor chain.
//   - Per-vertex data (Distance, Predecessor, LastMove, Neighbors,
//     VisitStateAt, ConfigAt) is exposed so callers can walk the BFS tree
//     themselves.
//   - Functional hooks observe the search at three stages:
//     OnEnqueue (vertex discovered), OnDequeue (expansion begins),
//     OnSettle (all neighbors generated).
//
// Move legality
//
//	Disks are indexed smallest-first. A disk may move only while it is the
//	topmost (smallest) disk on its peg, and only onto a peg whose topmost
//	disk, if any, is larger. Moves carry 1-based peg numbers, matching the
//	external presentation; configurations are 0-based internally.
//
// Invariants
//
//   - Every recorded edge appears in both endpoints' neighbor sets.
//   - distance, predecessor, and lastMove are set exactly once, when a
//     vertex transitions Unvisited → Frontier, and never change (first
//     discovery is shortest, edges being unweighted).
//   - Visit states advance monotonically: Unvisited → Frontier → Settled.
//   - len(MovesTo(goal)) equals the distance returned by Explore.
//
// Concurrency
//
//	A StateGraph is single-threaded by design: one instance owns all its
//	vertices for the duration of one search. Run concurrent searches on
//	separate instances.
//
// Complexity (V = reachable configurations ≤ P^D, E = legal moves between them)
//
//   - Time:   O(V + E), exponential in the disk count (inherent to the problem)
//   - Memory: O(V + E) for the arena, dedup index, and neighbor sets
//
// Usage
//
//	g, err := stategraph.New(3, 3)
//	if err != nil { ... }
//	dist, err := g.Explore(stategraph.Config{0, 0, 0}, stategraph.Config{2, 2, 2})
//	if err != nil { ... }
//	moves, err := g.MovesTo(stategraph.Config{2, 2, 2}) // len(moves) == dist
//
// Errors
//
//   - ErrDiskCount, ErrPegCount, ErrTooManyPegs   from New
//   - ErrConfigLength, ErrPegOutOfRange           from Explore and Apply
//   - ErrOptionViolation                          for invalid Options
//   - ErrGoalUnreachable                          if the frontier empties first
//   - ErrConfigNotFound                           from Vertex and MovesTo
//   - ErrIllegalMove                              from Apply
package stategraph
