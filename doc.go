// Package hanoigraph solves the generalized Tower of Hanoi puzzle
// (arbitrary disk and peg counts) by breadth-first search over the
// implicit graph of puzzle configurations.
//
// 🗼 What is hanoigraph?
//
//	A small, pure-Go solver built from three pieces:
//		• stategraph/: configurations as vertices, legal moves as edges,
//		  discovered lazily during BFS; minimum distance + move reconstruction
//		• textio/: the reference wire encoding (whitespace integers in,
//		  move list out)
//		• cmd/hanoigraph: stdin → stdout driver
//
// ✨ Why?
//
//   - Exact minimal solutions for any peg count, not just the classic 3-peg
//     recursion: the 4-peg (Frame–Stewart) optimum falls out of the search
//   - Every shortest-path guarantee comes from plain unweighted BFS:
//     first discovery is final, distances are provably minimal
//   - Observable: OnEnqueue/OnDequeue/OnSettle hooks expose the traversal
//
// Quick start:
//
//	g, _ := stategraph.New(3, 3)
//	dist, _ := g.Explore(stategraph.Config{0, 0, 0}, stategraph.Config{2, 2, 2})
//	moves, _ := g.MovesTo(stategraph.Config{2, 2, 2}) // 7 moves
//
// Or from a shell:
//
//	echo "3 3  1 1 1  3 3 3" | hanoigraph
//
// The reachable state space is numPegs^numDisks in the worst case; callers
// embedding the solver should cap the disk count if bounded latency matters.
package hanoigraph
