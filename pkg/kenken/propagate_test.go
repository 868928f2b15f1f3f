package kenken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagateSolvesAllEqCages(t *testing.T) {
	p := simplePuzzle()
	s := NewState(p, DefaultConfig())
	err := s.propagate(TierEasy)
	require.NoError(t, err)
	assert.True(t, s.isComplete())
	assert.Equal(t, 1, s.grid[0*2+0])
	assert.Equal(t, 2, s.grid[0*2+1])
}

func TestPropagateDetectsRowContradiction(t *testing.T) {
	p := &Puzzle{
		N: 2,
		Cages: []Cage{
			{Cells: []Cell{{0, 0}}, Op: OpEq, Target: 1},
			{Cells: []Cell{{0, 1}}, Op: OpEq, Target: 1}, // same value, same row: impossible
			{Cells: []Cell{{1, 0}}, Op: OpEq, Target: 2},
			{Cells: []Cell{{1, 1}}, Op: OpEq, Target: 2},
		},
	}
	s := NewState(p, DefaultConfig())
	err := s.propagate(TierEasy)
	assert.ErrorIs(t, err, errContradiction)
}

func TestPropagateTierNoneIgnoresCages(t *testing.T) {
	p := simplePuzzle()
	s := NewState(p, DefaultConfig())
	err := s.propagate(TierNone)
	require.NoError(t, err)
	assert.False(t, s.isComplete(), "TierNone must not apply cage deduction")
}

func TestPropagateHardTierEliminatesAcrossRow(t *testing.T) {
	// A 2-cell Add cage confined to row 0 whose feasible tuples (1,2) and
	// (2,1) give it must-appear values {1,2}; Hard-tier elimination removes
	// them from (0,2), the rest of row 0.
	p := &Puzzle{
		N: 3,
		Cages: []Cage{
			{Cells: []Cell{{0, 0}, {0, 1}}, Op: OpAdd, Target: 3}, // only {1,2}
			{Cells: []Cell{{0, 2}}, Op: OpEq, Target: 3},
			{Cells: []Cell{{1, 0}, {1, 1}, {1, 2}}, Op: OpAdd, Target: 6},
			{Cells: []Cell{{2, 0}, {2, 1}, {2, 2}}, Op: OpAdd, Target: 6},
		},
	}
	s := NewState(p, DefaultConfig())
	err := s.propagate(TierHard)
	require.NoError(t, err)
	// the eq cage also pins (0,2) to 3, so the assertion here is just that
	// propagation with Hard-tier elimination is sound and assigns (0,2);
	// (0,0) and (0,1) stay open between 1 and 2.
	assert.Equal(t, 3, s.grid[0*3+2])
}
