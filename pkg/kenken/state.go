package kenken

// Stats tracks per-invocation solver statistics (spec §3, §4.6):
// nodes visited by the search driver, successful assignments, the deepest
// recursion reached, and whether any retraction occurred.
type Stats struct {
	NodesVisited int
	Assignments  int
	MaxDepth     int
	Backtracked  bool
}

// State is the per-invocation solver state of spec §3/§4.2. It is created
// fresh at the entry of every public operation, mutated in place during
// propagation and search, and discarded on return: nothing here persists
// across calls, and nothing is shared between concurrent calls (spec §5).
type State struct {
	puzzle *Puzzle
	n      int

	grid    []int    // assigned value per cell, 0 for unassigned
	rowUsed []Domain // bitmask of values already placed in each row
	colUsed []Domain // bitmask of values already placed in each column

	// scratch is the propagator's per-cell working domain array. It is
	// rebuilt from scratch at the start of every propagate() call and is
	// not meaningful between calls (spec §3: "not stable between
	// propagator calls").
	scratch []Domain

	cellCage []int // cell index -> owning cage index (spec §9)

	// trail records, in chronological order, the cell indices assigned via
	// Place — including ones propagate() forces, not just branch choices.
	// The search driver marks a position in the trail on entering a node
	// and rewinds to it on leaving, which undoes an entire node's worth of
	// assignments (forced and chosen alike) in one step.
	trail []int

	mrv *mrvCache

	stats Stats

	popcount popcountProvider
	cfg      Config
}

// NewState allocates solver state for a single public operation over p,
// assuming p.Validate() has already succeeded.
func NewState(p *Puzzle, cfg Config) *State {
	cfg = cfg.normalized()
	n := p.N
	s := &State{
		puzzle:   p,
		n:        n,
		grid:     make([]int, n*n),
		rowUsed:  make([]Domain, n),
		colUsed:  make([]Domain, n),
		scratch:  make([]Domain, n*n),
		cellCage: buildCellCageIndex(p),
		mrv:      newMRVCache(n * n),
		popcount: selectPopcountProvider(cfg.DisableHardwarePopcount),
		cfg:      cfg,
	}
	return s
}

// domainCount reports d's size through s's selected popcount provider,
// honoring Config.DisableHardwarePopcount (spec §6) instead of always taking
// Domain.Count's hardware fast path.
func (s *State) domainCount(d Domain) int {
	return d.countWith(s.popcount)
}

// structuralDomain computes a cell's domain from Latin constraints alone:
// the singleton of its value if assigned, otherwise full(n) minus the
// row's and column's used-value masks (spec §4.4 step 1).
func (s *State) structuralDomain(r, c int) Domain {
	idx := r*s.n + c
	if v := s.grid[idx]; v != 0 {
		return SingletonDomain(v)
	}
	return FullDomain(s.n).Intersect(^s.rowUsed[r]).Intersect(^s.colUsed[c])
}

// Place assigns v to cell (r, c). It requires the cell to be unassigned and
// v to be absent from both the row's and column's used-value masks;
// violating either is a programming error the core treats as an
// unrecoverable precondition violation (spec §4.2), not a recoverable
// Contradiction. Every Place must be undone by a matching Unplace or by a
// rewind to a mark taken before it.
func (s *State) Place(r, c, v int) {
	idx := r*s.n + c
	if s.grid[idx] != 0 {
		preconditionViolation("place(%d,%d,%d): cell already holds %d", r, c, v, s.grid[idx])
	}
	if s.rowUsed[r].Contains(v) || s.colUsed[c].Contains(v) {
		preconditionViolation("place(%d,%d,%d): value already used in row or column", r, c, v)
	}

	s.grid[idx] = v
	s.rowUsed[r] = s.rowUsed[r].Insert(v)
	s.colUsed[c] = s.colUsed[c].Insert(v)
	s.trail = append(s.trail, idx)
	s.mrv.markDirty(idx)
	s.stats.Assignments++
}

// Unplace reverses the most recent Place(r, c, v), restoring grid, rowUsed,
// and colUsed to their pre-Place values bit-for-bit (spec §8 property 5).
// It invalidates the MRV cache in full: many cells' domains can re-expand
// once a value is retracted, so selective dirty-marking cannot be trusted
// here (spec §4.2, §4.5). Place/Unplace calls must nest like a stack; r, c,
// v must name the most recently placed cell.
func (s *State) Unplace(r, c, v int) {
	idx := r*s.n + c
	if s.grid[idx] != v {
		preconditionViolation("unplace(%d,%d,%d): cell holds %d, not %d", r, c, v, s.grid[idx], v)
	}
	if len(s.trail) == 0 || s.trail[len(s.trail)-1] != idx {
		preconditionViolation("unplace(%d,%d,%d): not the most recent assignment", r, c, v)
	}
	s.trail = s.trail[:len(s.trail)-1]
	s.grid[idx] = 0
	s.rowUsed[r] = s.rowUsed[r].Remove(v)
	s.colUsed[c] = s.colUsed[c].Remove(v)
	s.mrv.invalidate()
}

// mark returns a position in the assignment trail that rewind can later
// return to, undoing every Place made since — whether from explicit search
// branching or from propagate()'s forced singleton assignments.
func (s *State) mark() int { return len(s.trail) }

// rewind undoes every Place recorded in the trail back to mark, in reverse
// chronological order, and invalidates the MRV cache once at the end
// rather than per undone cell.
func (s *State) rewind(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		idx := s.trail[i]
		r, c := idx/s.n, idx%s.n
		v := s.grid[idx]
		s.grid[idx] = 0
		s.rowUsed[r] = s.rowUsed[r].Remove(v)
		s.colUsed[c] = s.colUsed[c].Remove(v)
	}
	s.trail = s.trail[:mark]
	s.mrv.invalidate()
}

// unassignedCount returns how many cells remain unassigned.
func (s *State) unassignedCount() int {
	count := 0
	for _, v := range s.grid {
		if v == 0 {
			count++
		}
	}
	return count
}

// isComplete reports whether every cell holds a value.
func (s *State) isComplete() bool {
	for _, v := range s.grid {
		if v == 0 {
			return false
		}
	}
	return true
}

// snapshotGrid copies the current grid assignments into a Solution.
func (s *State) snapshotGrid() Solution {
	out := make(Solution, len(s.grid))
	copy(out, s.grid)
	return out
}
