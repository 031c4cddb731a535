// Package scram_test contains unit tests for the collection and return
// controllers: validation, the budget-trap scenario, the safe-return
// invariant, hand-off semantics, and unreachable-exit failure.
package scram_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spelunk/env"
	"github.com/katalvlaran/spelunk/maze"
	"github.com/katalvlaran/spelunk/paths"
	"github.com/katalvlaran/spelunk/scram"
)

// trapMaze builds the budget-trap scenario: start S with the exit three
// unit edges away down a corridor, and one high-value node H hanging
// off S (one edge away, four edges from the exit).
//
//	H(100)
//	  │
//	  S ── a ── b ── X(exit)
func trapMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m := maze.New()
	require.NoError(t, m.AddNode(0, 0))   // S
	require.NoError(t, m.AddNode(1, 100)) // H
	require.NoError(t, m.AddNode(2, 0))   // a
	require.NoError(t, m.AddNode(3, 0))   // b
	require.NoError(t, m.AddNode(4, 0))   // X
	require.NoError(t, m.Connect(0, 1, 1))
	require.NoError(t, m.Connect(0, 2, 1))
	require.NoError(t, m.Connect(2, 3, 1))
	require.NoError(t, m.Connect(3, 4, 1))

	return m
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestNilState(t *testing.T) {
	_, err := scram.Collect(nil)
	assert.ErrorIs(t, err, scram.ErrNilState)
	assert.ErrorIs(t, scram.Return(nil), scram.ErrNilState)
	assert.ErrorIs(t, scram.Scram(nil), scram.ErrNilState)
}

// ------------------------------------------------------------------------
// 2. Return: the plain walk to the exit.
// ------------------------------------------------------------------------

func TestReturn_WalksBestPath(t *testing.T) {
	m := trapMaze(t)
	st, err := env.NewScramEnv(m, 0, 4, 10)
	require.NoError(t, err)

	require.NoError(t, scram.Return(st))
	assert.Equal(t, maze.ID(4), st.CurrentNode())
	assert.Equal(t, int64(7), st.StepsRemaining()) // 10 - 3

	want := []maze.ID{0, 2, 3, 4}
	if diff := cmp.Diff(want, st.Trace()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestReturn_AlreadyAtExit(t *testing.T) {
	st, err := env.NewScramEnv(trapMaze(t), 4, 4, 0)
	require.NoError(t, err)

	require.NoError(t, scram.Return(st))
	assert.Equal(t, maze.ID(4), st.CurrentNode())
	assert.Len(t, st.Trace(), 1)
}

func TestReturn_ExitUnreachable(t *testing.T) {
	m := trapMaze(t)
	require.NoError(t, m.AddNode(9, 0)) // island exit

	st, err := env.NewScramEnv(m, 0, 9, 10)
	require.NoError(t, err)
	assert.ErrorIs(t, scram.Return(st), scram.ErrExitUnreachable)
}

// ------------------------------------------------------------------------
// 3. Scenario: budget 5 — the high-value node is a trap and must be
//    skipped in favor of an immediate hand-off to Return.
// ------------------------------------------------------------------------

func TestCollect_SkipsTrapNode(t *testing.T) {
	st, err := env.NewScramEnv(trapMaze(t), 0, 4, 5)
	require.NoError(t, err)

	handedOff, err := scram.Collect(st)
	require.NoError(t, err)
	assert.True(t, handedOff, "stepping onto H leaves too little budget; must hand off")
	assert.Equal(t, maze.ID(4), st.CurrentNode())
	assert.Equal(t, int64(0), st.Collected(), "the trap node must not be visited")
	assert.GreaterOrEqual(t, st.StepsRemaining(), int64(0))

	// Straight to the exit, never touching H.
	want := []maze.ID{0, 2, 3, 4}
	if diff := cmp.Diff(want, st.Trace()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestScram_CollectsWhenBudgetIsFlush(t *testing.T) {
	// With budget to spare the same maze is worth the detour: grab H,
	// then walk out.
	st, err := env.NewScramEnv(trapMaze(t), 0, 4, 100)
	require.NoError(t, err)

	require.NoError(t, scram.Scram(st))
	assert.Equal(t, maze.ID(4), st.CurrentNode())
	assert.Equal(t, int64(100), st.Collected())
	// H detour (1) + back (1) + corridor (3).
	assert.Equal(t, int64(95), st.StepsRemaining())
}

// ------------------------------------------------------------------------
// 4. Safe-return invariant: budget never drops below the shortest
//    distance home at any committed move.
// ------------------------------------------------------------------------

func TestScram_SafeReturnInvariant(t *testing.T) {
	// A valued grid: plenty to collect, tight-ish budget.
	grid := [][]int{
		{0, 4, 0, 9},
		{2, -1, 0, 0},
		{0, 7, 1, 3},
	}
	m, err := maze.FromGrid(grid, maze.DefaultGridOptions())
	require.NoError(t, err)

	exit := maze.ID(0)
	fromExit, err := paths.New(m)
	require.NoError(t, err)
	require.NoError(t, fromExit.ComputeFrom(exit))

	st, err := env.NewScramEnv(m, 11, exit, 9) // far corner, 9 steps
	require.NoError(t, err)

	err = scram.Scram(st, scram.WithOnMove(func(_, to maze.ID) {
		home, derr := fromExit.DistanceTo(to)
		require.NoError(t, derr)
		assert.GreaterOrEqual(t, st.StepsRemaining(), home,
			"move to %d broke the safe-return margin", to)
	}))
	require.NoError(t, err)
	assert.Equal(t, exit, st.CurrentNode())
	assert.GreaterOrEqual(t, st.StepsRemaining(), int64(0))
}

// ------------------------------------------------------------------------
// 5. Degenerate cases.
// ------------------------------------------------------------------------

func TestScram_StartOnExitZeroBudget(t *testing.T) {
	st, err := env.NewScramEnv(trapMaze(t), 4, 4, 0)
	require.NoError(t, err)

	require.NoError(t, scram.Scram(st))
	assert.Equal(t, maze.ID(4), st.CurrentNode())
	assert.Len(t, st.Trace(), 1, "no budget, no moves")
}

func TestScram_NothingLeftToCollect(t *testing.T) {
	// All values zero: collection stops instead of wandering, and the
	// agent still ends on the exit.
	m := maze.New()
	for _, id := range []maze.ID{0, 1, 2} {
		require.NoError(t, m.AddNode(id, 0))
	}
	require.NoError(t, m.Connect(0, 1, 1))
	require.NoError(t, m.Connect(1, 2, 1))

	st, err := env.NewScramEnv(m, 0, 2, 50)
	require.NoError(t, err)
	require.NoError(t, scram.Scram(st))
	assert.Equal(t, maze.ID(2), st.CurrentNode())
}

func TestCollect_ExitUnreachable(t *testing.T) {
	m := trapMaze(t)
	require.NoError(t, m.AddNode(9, 0))

	st, err := env.NewScramEnv(m, 0, 9, 10)
	require.NoError(t, err)
	_, err = scram.Collect(st)
	assert.ErrorIs(t, err, scram.ErrExitUnreachable)
}

func TestCollect_OnCollectSeesChosenCandidates(t *testing.T) {
	st, err := env.NewScramEnv(trapMaze(t), 0, 4, 100)
	require.NoError(t, err)

	var chosen []maze.ID
	var scores []float64
	_, err = scram.Collect(st, scram.WithOnCollect(func(id maze.ID, s float64) {
		chosen = append(chosen, id)
		scores = append(scores, s)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, chosen)
	assert.Equal(t, maze.ID(1), chosen[0], "H is the obvious first pick")
	assert.Negative(t, scores[0], "a valued candidate scores below zero")
}
