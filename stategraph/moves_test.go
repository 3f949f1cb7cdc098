package stategraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoigraph/stategraph"
)

func TestApply_Legal(t *testing.T) {
	g, err := stategraph.New(3, 3)
	require.NoError(t, err)

	next, err := g.Apply(uniform(3, 0), stategraph.Move{From: 1, To: 3})
	require.NoError(t, err)
	assert.True(t, next.Equal(stategraph.Config{2, 0, 0}))

	// larger disk onto an occupied peg whose disks are all smaller: illegal
	_, err = g.Apply(next, stategraph.Move{From: 1, To: 3})
	assert.ErrorIs(t, err, stategraph.ErrIllegalMove)

	// but onto an empty peg it is fine
	next2, err := g.Apply(next, stategraph.Move{From: 1, To: 2})
	require.NoError(t, err)
	assert.True(t, next2.Equal(stategraph.Config{2, 1, 0}))
}

func TestApply_Errors(t *testing.T) {
	g, err := stategraph.New(2, 3)
	require.NoError(t, err)
	cfg := stategraph.Config{0, 0}

	cases := []struct {
		name string
		mv   stategraph.Move
	}{
		{"same source and destination", stategraph.Move{From: 1, To: 1}},
		{"empty source peg", stategraph.Move{From: 2, To: 3}},
		{"peg number too large", stategraph.Move{From: 1, To: 4}},
		{"peg number too small", stategraph.Move{From: 0, To: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Apply(cfg, tc.mv)
			assert.ErrorIs(t, err, stategraph.ErrIllegalMove)
		})
	}

	// malformed configuration is rejected before the move is inspected
	_, err = g.Apply(stategraph.Config{0}, stategraph.Move{From: 1, To: 2})
	assert.ErrorIs(t, err, stategraph.ErrConfigLength)
}

// TestMovesTo_Replay: for every scenario, the reconstructed path has
// exactly `distance` moves, each move is legal, and replaying them from
// the start lands on the goal.
func TestMovesTo_Replay(t *testing.T) {
	scenarios := []struct {
		name  string
		disks int
		pegs  int
		start stategraph.Config
		goal  stategraph.Config
	}{
		{"classic 3-disk", 3, 3, uniform(3, 0), uniform(3, 2)},
		{"classic 5-disk", 5, 3, uniform(5, 0), uniform(5, 2)},
		{"scattered 3-disk", 3, 3, stategraph.Config{0, 1, 2}, stategraph.Config{2, 1, 0}},
		{"four pegs", 4, 4, uniform(4, 0), uniform(4, 3)},
		{"partial rearrangement", 4, 3, stategraph.Config{0, 0, 1, 1}, stategraph.Config{2, 2, 0, 0}},
	}
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			g, err := stategraph.New(sc.disks, sc.pegs)
			require.NoError(t, err)

			dist, err := g.Explore(sc.start, sc.goal)
			require.NoError(t, err)

			moves, err := g.MovesTo(sc.goal)
			require.NoError(t, err)
			require.Len(t, moves, dist, "path length must equal reported distance")

			cfg := sc.start.Clone()
			for i, mv := range moves {
				cfg, err = g.Apply(cfg, mv)
				require.NoError(t, err, "move %d (%d→%d) must be legal", i, mv.From, mv.To)
			}
			assert.True(t, cfg.Equal(sc.goal), "replay must end on the goal")
		})
	}
}

// TestMovesTo_ConcreteScenario pins the 3-disk wire scenario: pegs
// `1 1 1` → `3 3 3` solves in 7 moves, opening with 1→3.
func TestMovesTo_ConcreteScenario(t *testing.T) {
	g, err := stategraph.New(3, 3)
	require.NoError(t, err)

	dist, err := g.Explore(uniform(3, 0), uniform(3, 2))
	require.NoError(t, err)
	assert.Equal(t, 7, dist)

	moves, err := g.MovesTo(uniform(3, 2))
	require.NoError(t, err)
	require.Len(t, moves, 7)
	assert.Equal(t, stategraph.Move{From: 1, To: 3}, moves[0])
}

func TestMovesTo_UnknownConfig(t *testing.T) {
	g, err := stategraph.New(3, 3)
	require.NoError(t, err)

	// a zero-length search discovers only the start and its immediate
	// neighbors; distant configurations stay unknown
	_, err = g.Explore(uniform(3, 1), uniform(3, 1))
	require.NoError(t, err)

	_, err = g.MovesTo(uniform(3, 2))
	assert.ErrorIs(t, err, stategraph.ErrConfigNotFound)
}
