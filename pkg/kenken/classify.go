package kenken

// ClassifyTierRequired reports the weakest propagation tier whose fixed
// point alone completes the grid, with no branching search needed (spec
// §4.7). It tries TierNone, then each of orderedTiers (Easy, Normal, Hard)
// in ascending strength, in the ThoDHa-sudoku human-solver shape of "try
// the cheapest technique first, escalate only on failure": each tier's
// fixed point is sound (it only removes values no valid completion uses),
// so a contradiction at any tier is definitive and is reported immediately
// as ErrUnsolvable rather than triggering a retry at a stronger tier.
//
// If no propagation tier alone finishes the grid, a full backtracking
// search (spec §4.6) confirms whether a solution exists at all; when it
// does, the puzzle is classified as requiring TierHard — Tier has no value
// stronger than Hard, so "requires search" is not reported separately.
func ClassifyTierRequired(p *Puzzle, cfg Config) (Tier, Stats, error) {
	if err := p.Validate(); err != nil {
		return TierNone, Stats{}, err
	}
	cfg = cfg.normalized()

	tiers := append([]Tier{TierNone}, orderedTiers...)
	for _, tier := range tiers {
		s := NewState(p, cfg)
		if err := s.propagate(tier); err != nil {
			return TierNone, s.stats, ErrUnsolvable
		}
		if s.isComplete() {
			return tier, s.stats, nil
		}
	}

	s := NewState(p, cfg)
	found := false
	s.backtrack(0, TierHard, func() bool {
		found = true
		return false
	})
	if !found {
		return TierNone, s.stats, ErrUnsolvable
	}
	return TierHard, s.stats, nil
}
