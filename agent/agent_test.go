// Package agent_test contains the episode-level tests: the full
// seek-then-scram round trip, including the unique-path property on a
// corridor maze.
package agent_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spelunk/agent"
	"github.com/katalvlaran/spelunk/env"
	"github.com/katalvlaran/spelunk/maze"
)

// ------------------------------------------------------------------------
// 1. Round trip on a corridor: the unique path is reproduced exactly,
//    with zero backtracking and zero aborted candidate walks.
// ------------------------------------------------------------------------

func TestRoundTrip_CorridorReproducesUniquePath(t *testing.T) {
	// 0—1—2—3, value 5 on node 1; target and scram start at 3, exit 0.
	m := maze.New()
	require.NoError(t, m.AddNode(0, 0))
	require.NoError(t, m.AddNode(1, 5))
	require.NoError(t, m.AddNode(2, 0))
	require.NoError(t, m.AddNode(3, 0))
	require.NoError(t, m.Connect(0, 1, 1))
	require.NoError(t, m.Connect(1, 2, 1))
	require.NoError(t, m.Connect(2, 3, 1))

	d := agent.New()

	// Seek: 0 → 3 along the only path, no backtracking.
	sst, err := env.NewSeekEnv(m, 0, 3)
	require.NoError(t, err)
	res, err := d.Seek(sst)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Backtracks)
	if diff := cmp.Diff([]maze.ID{0, 1, 2, 3}, sst.Trace()); diff != "" {
		t.Errorf("seek trace mismatch (-want +got):\n%s", diff)
	}

	// Scram: back down the same corridor, collecting node 1 on the way.
	cst, err := env.NewScramEnv(m, 3, 0, 10)
	require.NoError(t, err)
	require.NoError(t, d.Scram(cst))
	assert.Equal(t, maze.ID(0), cst.CurrentNode())
	assert.Equal(t, int64(5), cst.Collected())
	if diff := cmp.Diff([]maze.ID{3, 2, 1, 0}, cst.Trace()); diff != "" {
		t.Errorf("scram trace mismatch (-want +got):\n%s", diff)
	}
}

// ------------------------------------------------------------------------
// 2. Full episode on a walled grid.
// ------------------------------------------------------------------------

func TestEpisode_GridMaze(t *testing.T) {
	grid := [][]int{
		{0, 0, 6, 0},
		{0, -1, -1, 2},
		{0, 8, 0, 0},
	}
	m, err := maze.FromGrid(grid, maze.DefaultGridOptions())
	require.NoError(t, err)

	start, target := maze.ID(0), maze.ID(10) // target doubles as scram start
	exit := maze.ID(0)

	d := agent.New()

	sst, err := env.NewSeekEnv(m, start, target)
	require.NoError(t, err)
	_, err = d.Seek(sst)
	require.NoError(t, err)
	assert.Equal(t, 0, sst.DistanceToTarget())
	assert.Equal(t, target, sst.CurrentLocation())

	cst, err := env.NewScramEnv(m, target, exit, 30)
	require.NoError(t, err)
	require.NoError(t, d.Scram(cst))
	assert.Equal(t, exit, cst.CurrentNode())
	assert.GreaterOrEqual(t, cst.StepsRemaining(), int64(0))
	assert.Positive(t, cst.Collected(), "a flush budget gathers something")
}

// ------------------------------------------------------------------------
// 3. A Diver is reusable: the seek visited set does not leak between
//    episodes.
// ------------------------------------------------------------------------

func TestDiver_ReusableAcrossEpisodes(t *testing.T) {
	m := maze.New()
	for _, id := range []maze.ID{1, 2, 3} {
		require.NoError(t, m.AddNode(id, 0))
	}
	require.NoError(t, m.Connect(1, 2, 1))
	require.NoError(t, m.Connect(2, 3, 1))

	d := agent.New()
	for i := 0; i < 3; i++ {
		st, err := env.NewSeekEnv(m, 1, 3)
		require.NoError(t, err)
		res, err := d.Seek(st)
		require.NoError(t, err, "episode %d", i)
		assert.Equal(t, 2, res.Moves, "episode %d must not remember old visits", i)
	}
}
