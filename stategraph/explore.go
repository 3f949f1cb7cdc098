package stategraph

import (
	"fmt"
)

// walker encapsulates mutable BFS state for one Explore call.
type walker struct {
	graph   *StateGraph
	opts    Options
	queue   []VertexID
	goalKey string
}

// Explore computes the minimum number of single-disk moves transforming
// start into goal, applying any number of functional Options.
//
// The graph is reset first: all vertices from a previous Explore are
// discarded. Both configurations are validated eagerly and rejected with
// ErrConfigLength or ErrPegOutOfRange before any search work happens.
//
// The search is a standard unweighted BFS where neighbor configurations
// and their connecting edges are synthesized on the fly: for each disk of
// the dequeued configuration that is topmost on its peg (ascending disk
// index), and each legal destination peg (ascending peg index), the
// resulting configuration is created or found, the undirected edge is
// recorded the first time that pair is traversed, and a still-Unvisited
// neighbor inherits distance, predecessor, and the producing move before
// joining the frontier. A vertex is settled after its neighbors are
// generated and compared against goal immediately afterwards.
//
// Returns the goal's BFS distance, or ErrGoalUnreachable if the frontier
// empties first (impossible for well-formed inputs with ≥3 pegs),
// ErrOptionViolation for bad options, or a context error on cancellation.
//
// Complexity: O(V + E) time and memory over the reachable state space,
// which is bounded by numPegs^numDisks.
func (g *StateGraph) Explore(start, goal Config, opts ...Option) (int, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// Validate inputs before committing any resources
	if err := g.validateConfig(start); err != nil {
		return 0, fmt.Errorf("start configuration: %w", err)
	}
	if err := g.validateConfig(goal); err != nil {
		return 0, fmt.Errorf("goal configuration: %w", err)
	}

	g.reset(o.CapacityHint)
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]VertexID, 0, 64),
		goalKey: goal.key(),
	}

	// Seed the frontier with the start vertex at depth 0.
	startID := g.getOrCreate(start.Clone())
	g.vertices[startID].state = Frontier
	o.OnEnqueue(startID, 0)
	w.queue = append(w.queue, startID)

	return w.run()
}

// run processes the frontier until the goal settles, the queue empties,
// or the context is cancelled.
func (w *walker) run() (int, error) {
	g := w.graph
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		id := w.dequeue()
		if err := w.expand(id); err != nil {
			return 0, err
		}

		// Settle, then check the goal: the settle order is the BFS
		// visitation order, so the first match carries the minimum depth.
		g.vertices[id].state = Settled
		w.opts.OnSettle(id, g.vertices[id].distance)
		if g.vertices[id].config.key() == w.goalKey {
			return g.vertices[id].distance, nil
		}
	}

	return 0, ErrGoalUnreachable
}

// dequeue pops the front vertex and invokes OnDequeue.
func (w *walker) dequeue() VertexID {
	id := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(id, w.graph.vertices[id].distance)

	return id
}

// expand synthesizes every legal single-disk move out of id, recording
// new edges and discovering new vertices.
func (w *walker) expand(id VertexID) error {
	g := w.graph
	// Local copies: the arena may reallocate while neighbors are created.
	cfg := g.vertices[id].config
	depth := g.vertices[id].distance

	for disk := 0; disk < g.numDisks; disk++ {
		// only the topmost disk of a peg may move
		if !topmost(cfg, disk) {
			continue
		}
		for peg := 0; peg < g.numPegs; peg++ {
			// cancellation check inside neighbor synthesis
			select {
			case <-w.opts.Ctx.Done():
				return w.opts.Ctx.Err()
			default:
			}

			if peg == cfg[disk] || pegHasSmaller(cfg, disk, peg) {
				continue
			}

			next := cfg.Clone()
			next[disk] = peg
			nid := g.getOrCreate(next)

			// record the undirected edge once per unordered pair
			if !g.link(id, nid) {
				continue
			}
			if g.vertices[nid].state != Unvisited {
				continue
			}
			// first discovery is the shortest, edges being unweighted
			nv := &g.vertices[nid]
			nv.pred = id
			nv.distance = depth + 1
			nv.lastMove = Move{From: cfg[disk] + 1, To: peg + 1}
			nv.state = Frontier
			w.opts.OnEnqueue(nid, nv.distance)
			w.queue = append(w.queue, nid)
		}
	}

	return nil
}
