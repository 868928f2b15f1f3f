package kenken

// backtrack performs the MRV/LCV backtracking search of spec §4.6. It
// propagates at the caller-chosen tier before branching on every node, so a
// node is only ever entered with a grid consistent at that tier. SolveOne
// and CountSolutionsUpTo pass their caller's tier, and ClassifyTierRequired's
// search fallback always passes TierHard; a weaker tier still reaches every
// solution the tree contains, just with more nodes visited along the way.
// onSolution is invoked with every complete grid reached that satisfies
// every cage; returning false tells the search to stop immediately (SolveOne's
// "first solution is enough"), true tells it to keep exploring
// (CountSolutionsUpTo's "gather up to a limit"). The bool backtrack itself
// returns mirrors that: true means "keep searching the rest of the tree",
// false means "a caller asked us to stop".
func (s *State) backtrack(depth int, tier Tier, onSolution func() bool) bool {
	s.stats.NodesVisited++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
	s.cfg.Trace.SearchNodeEntered(depth)

	trailMark := s.mark()
	if err := s.propagate(tier); err != nil {
		s.rewind(trailMark)
		s.cfg.Trace.SearchBacktrack(depth)
		return true
	}

	cell := s.mrv.choose(s)
	if cell == -1 {
		// TierNone applies no cage deduction, so check every cage here.
		for ci := range s.puzzle.Cages {
			cage := &s.puzzle.Cages[ci]
			values := make([]int, len(cage.Cells))
			for i, cl := range cage.Cells {
				values[i] = s.grid[cl.index(s.n)]
			}
			if result, ok := applyOperator(cage.Op, values); !ok || result != cage.Target {
				s.rewind(trailMark)
				return true
			}
		}
		keepGoing := onSolution()
		s.rewind(trailMark)
		return keepGoing
	}

	r, c := cell/s.n, cell%s.n
	domain := s.structuralDomain(r, c)
	var values []int
	if s.cfg.EnableLCV {
		values = s.lcvOrder(r, c, domain)
	} else {
		values = domain.Values()
	}

	for _, v := range values {
		branchMark := s.mark()
		s.Place(r, c, v)
		keepGoing := s.backtrack(depth+1, tier, onSolution)
		s.rewind(branchMark)
		if !keepGoing {
			return false
		}
		s.stats.Backtracked = true
	}

	s.cfg.Trace.SearchBacktrack(depth)
	s.rewind(trailMark)
	return true
}
