package kenken

// propagationResult reports how a propagate() call ended: either every
// unassigned cell still has a non-empty domain (propagationConsistent), or
// some cell's domain collapsed to empty (propagationContradiction). It
// exists mainly so Sink.PropagateEnd has something concrete to trace; the
// actual contradiction signal callers act on is the returned error.
type propagationResult int

const (
	propagationConsistent propagationResult = iota
	propagationContradiction
)

// propagate runs the fixed-point constraint propagator of spec §4.3 at the
// given tier: it alternates Latin (row/column) narrowing, (at TierEasy and
// above) cage-arithmetic deduction, and assignment forcing until a full
// pass forces no new assignment. It returns errContradiction, never
// ErrUnsolvable, the moment any unassigned cell's domain collapses to
// empty; the search driver and classifier are the only callers that
// interpret that signal, each in its own way (spec §4.2, §4.7).
func (s *State) propagate(tier Tier) error {
	s.cfg.Trace.PropagateStart(tier)

	for {
		changed := false

		for i := range s.scratch {
			if v := s.grid[i]; v != 0 {
				s.scratch[i] = SingletonDomain(v)
				continue
			}
			r, c := i/s.n, i%s.n
			s.scratch[i] = s.structuralDomain(r, c)
			if s.scratch[i].IsEmpty() {
				s.cfg.Trace.PropagateEnd(tier, propagationContradiction)
				return errContradiction
			}
		}

		if tier >= TierEasy {
			// Cage narrowing lives only in scratch, which the next pass
			// rebuilds, so it does not count as progress; only forced
			// assignments do.
			if _, err := s.propagateCages(tier); err != nil {
				s.cfg.Trace.PropagateEnd(tier, propagationContradiction)
				return err
			}
		}

		for i, d := range s.scratch {
			if s.grid[i] == 0 && d.IsEmpty() {
				s.cfg.Trace.PropagateEnd(tier, propagationContradiction)
				return errContradiction
			}
		}

		for i, d := range s.scratch {
			if s.grid[i] != 0 {
				continue
			}
			if d.IsSingleton() {
				r, c := i/s.n, i%s.n
				v := d.SingletonValue()
				if !s.structuralDomain(r, c).Contains(v) {
					// an earlier forced assignment in this pass took v
					s.cfg.Trace.PropagateEnd(tier, propagationContradiction)
					return errContradiction
				}
				s.Place(r, c, v)
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	s.cfg.Trace.PropagateEnd(tier, propagationConsistent)
	return nil
}

// propagateCages runs one pass of cage-arithmetic deduction over every
// cage: TierEasy intersects every cage cell with the cage's single pooled
// any-mask, TierNormal and above instead intersect each cell with its own
// per-position mask, and TierHard additionally eliminates a cage's
// must-appear values from same-row/column cells outside the cage.
func (s *State) propagateCages(tier Tier) (bool, error) {
	changed := false
	for ci := range s.puzzle.Cages {
		cage := &s.puzzle.Cages[ci]
		before := cageDomains(cage, s.scratch, s.n)

		deduction, err := deduceCage(cage, before, s.n, s.cfg, tier)
		if err != nil {
			return false, err
		}
		if deduction == nil {
			continue
		}

		if applyCageDomains(cage, s.scratch, s.n, tier, deduction) {
			changed = true
			s.cfg.Trace.CageDeduced(ci, cage.Op)
		}

		if tier >= TierHard && deduction.mustAppear != 0 {
			if s.eliminateAcrossCage(ci, deduction.mustAppear) {
				changed = true
			}
		}
	}
	return changed, nil
}

// cageDomains gathers the current scratch domain of each of a cage's cells,
// in Cage.Cells order.
func cageDomains(cage *Cage, scratch []Domain, n int) []Domain {
	out := make([]Domain, len(cage.Cells))
	for i, c := range cage.Cells {
		out[i] = scratch[c.index(n)]
	}
	return out
}

// applyCageDomains intersects each cage cell's scratch domain with the mask
// the caller's tier is entitled to — deduction.anyMask, pooled across the
// whole cage, below TierNormal; deduction.refined[i]'s tighter per-position
// mask at TierNormal and above — reporting whether anything narrowed. It
// returns false without reporting a contradiction: emptiness was already
// checked by deduceCage before either mask was built.
func applyCageDomains(cage *Cage, scratch []Domain, n int, tier Tier, deduction *cageDeduction) bool {
	changed := false
	for i, c := range cage.Cells {
		idx := c.index(n)
		mask := deduction.anyMask
		if tier >= TierNormal {
			mask = deduction.refined[i]
		}
		narrowed := scratch[idx].Intersect(mask)
		if narrowed != scratch[idx] {
			changed = true
		}
		scratch[idx] = narrowed
	}
	return changed
}

// eliminateAcrossCage implements Hard-tier cross-cage elimination: when a
// cage's cells all share one row (or column) and some value is forced to
// appear somewhere in the cage by every feasible tuple, that value can be
// removed from every other cell in that same row (or column), since the
// cage will already claim one of the row's occurrences. ci identifies the
// cage in s.cellCage, used to tell cage members from row/column peers
// without rescanning cage.Cells.
func (s *State) eliminateAcrossCage(ci int, mustAppear Domain) bool {
	cage := &s.puzzle.Cages[ci]
	changed := false
	if row, ok := cageSharesRow(cage); ok {
		changed = s.eliminateFromRow(row, ci, mustAppear) || changed
	}
	if col, ok := cageSharesCol(cage); ok {
		changed = s.eliminateFromCol(col, ci, mustAppear) || changed
	}
	return changed
}

func cageSharesRow(cage *Cage) (int, bool) {
	row := cage.Cells[0].Row
	for _, c := range cage.Cells[1:] {
		if c.Row != row {
			return 0, false
		}
	}
	return row, true
}

func cageSharesCol(cage *Cage) (int, bool) {
	col := cage.Cells[0].Col
	for _, c := range cage.Cells[1:] {
		if c.Col != col {
			return 0, false
		}
	}
	return col, true
}

func (s *State) eliminateFromRow(row, ci int, mustAppear Domain) bool {
	changed := false
	for c := 0; c < s.n; c++ {
		idx := row*s.n + c
		if s.cellCage[idx] == ci {
			continue
		}
		if s.grid[idx] != 0 {
			continue
		}
		narrowed := s.scratch[idx].Intersect(^mustAppear)
		if narrowed != s.scratch[idx] {
			changed = true
		}
		s.scratch[idx] = narrowed
	}
	return changed
}

func (s *State) eliminateFromCol(col, ci int, mustAppear Domain) bool {
	changed := false
	for r := 0; r < s.n; r++ {
		idx := r*s.n + col
		if s.cellCage[idx] == ci {
			continue
		}
		if s.grid[idx] != 0 {
			continue
		}
		narrowed := s.scratch[idx].Intersect(^mustAppear)
		if narrowed != s.scratch[idx] {
			changed = true
		}
		s.scratch[idx] = narrowed
	}
	return changed
}
