package kenken

// SolveOne returns the first solution the backtracking search finds at tier,
// or (nil, stats, nil) if the search exhausts the tree without finding one
// (spec §4.8, C8). "No solution" is not an error but a normal negative
// result; ErrUnsolvable is reserved for ClassifyTierRequired alone. cfg may
// be the zero value; it is normalized
// internally. Validation failures are returned as *ValidationError,
// distinguishing "not a legal puzzle" from "legal but unsolvable".
func SolveOne(p *Puzzle, tier Tier, cfg Config) (Solution, Stats, error) {
	if err := p.Validate(); err != nil {
		return nil, Stats{}, err
	}
	cfg = cfg.normalized()
	s := NewState(p, cfg)

	var solution Solution
	s.backtrack(0, tier, func() bool {
		solution = s.snapshotGrid()
		return false
	})

	return solution, s.stats, nil
}

// CountSolutionsUpTo runs the search driver at tier to completion or until
// limit distinct solutions have been found, whichever comes first (spec
// §4.8). A returned count equal to limit means "at least limit"; callers
// that need to know whether more solutions exist beyond the cap should
// increase limit and re-run, since the driver does not report truncation
// itself.
func CountSolutionsUpTo(p *Puzzle, tier Tier, limit int, cfg Config) (int, Stats, error) {
	if err := p.Validate(); err != nil {
		return 0, Stats{}, err
	}
	if limit <= 0 {
		return 0, Stats{}, nil
	}
	cfg = cfg.normalized()
	s := NewState(p, cfg)

	count := 0
	s.backtrack(0, tier, func() bool {
		count++
		return count < limit
	})

	return count, s.stats, nil
}
