package kenken

// mrvCache incrementally maintains the "cell with fewest remaining values"
// selector across repeated choose-next-cell calls within a propagator-
// stable state (spec §4.5). Selective dirty tracking — only marking cells
// whose domains actually narrowed — is what lets the cache amortize away
// the full O(n²) scan in the common case where most cells are stable by
// the final propagator passes.
type mrvCache struct {
	minCell    int
	minCount   int
	valid      bool
	dirty      []bool
	dirtyCount int
}

// newMRVCache allocates a cache sized for numCells, initially invalid (the
// first choose() call always does a full scan).
func newMRVCache(numCells int) *mrvCache {
	return &mrvCache{
		minCell: -1,
		dirty:   make([]bool, numCells),
	}
}

// markDirty records that cell i's domain may have narrowed since the cache
// was last established. Idempotent: marking an already-dirty cell again is
// a no-op, preserving an accurate dirtyCount.
func (c *mrvCache) markDirty(i int) {
	if !c.dirty[i] {
		c.dirty[i] = true
		c.dirtyCount++
	}
}

// invalidate forces a full rescan on the next choose() call. Used by
// Unplace: domains can re-expand, so the cached minimum is unconditionally
// stale (spec §4.5: "Invalidated fully by unplace").
func (c *mrvCache) invalidate() {
	c.valid = false
	for i, d := range c.dirty {
		if !d {
			c.dirty[i] = true
			c.dirtyCount++
		}
	}
}

// choose returns the unassigned cell with the smallest current structural
// domain (ties broken by lowest index), or -1 if every cell is assigned.
// It returns the cached answer when valid and nothing is dirty; otherwise
// it rescans every unassigned cell and refreshes the cache.
func (c *mrvCache) choose(s *State) int {
	if c.valid && c.dirtyCount == 0 {
		return c.minCell
	}

	best, bestCount := -1, -1
	for i := 0; i < len(s.grid); i++ {
		if s.grid[i] != 0 {
			continue
		}
		r, col := i/s.n, i%s.n
		count := s.domainCount(s.structuralDomain(r, col))
		if best == -1 || count < bestCount {
			best, bestCount = i, count
		}
	}

	c.minCell, c.minCount, c.valid = best, bestCount, true
	for i := range c.dirty {
		c.dirty[i] = false
	}
	c.dirtyCount = 0
	return best
}
