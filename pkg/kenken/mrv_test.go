package kenken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMRVCacheChoosesSmallestDomain(t *testing.T) {
	p := threeByThreePuzzle()
	s := NewState(p, DefaultConfig())
	require.NoError(t, s.propagate(TierEasy))

	cell := s.mrv.choose(s)
	if cell == -1 {
		return // propagation alone may already finish this small puzzle
	}
	r, c := cell/s.n, cell%s.n
	chosenCount := s.structuralDomain(r, c).Count()

	for i := 0; i < s.n*s.n; i++ {
		if s.grid[i] != 0 || i == cell {
			continue
		}
		rr, cc := i/s.n, i%s.n
		assert.GreaterOrEqual(t, s.structuralDomain(rr, cc).Count(), chosenCount)
	}
}

func TestMRVCacheReturnsMinusOneWhenComplete(t *testing.T) {
	p := simplePuzzle()
	s := NewState(p, DefaultConfig())
	require.NoError(t, s.propagate(TierEasy))
	assert.Equal(t, -1, s.mrv.choose(s))
}

func TestMRVCacheInvalidateForcesRescan(t *testing.T) {
	c := newMRVCache(4)
	c.valid = true
	c.minCell = 2
	c.invalidate()
	assert.False(t, c.valid)
	assert.Equal(t, 4, c.dirtyCount)
}

func TestMRVCacheMarkDirtyIdempotent(t *testing.T) {
	c := newMRVCache(4)
	c.markDirty(1)
	c.markDirty(1)
	assert.Equal(t, 1, c.dirtyCount)
}
