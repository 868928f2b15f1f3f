package kenken

// Tier is a deduction-propagation strength level (spec §4.3). Tiers are
// ordered None < Easy < Normal < Hard; higher tiers strictly refine lower
// tiers' pruning (a value eliminable at Easy is eliminable at Normal and
// Hard) without ever changing the underlying solution set.
type Tier int

const (
	// TierNone runs no cage deduction; only assignment and Latin
	// row/column propagation narrow domains.
	TierNone Tier = iota
	// TierEasy intersects each cell's domain with the "any-mask" of values
	// appearing in some feasible cage completion.
	TierEasy
	// TierNormal refines Easy with per-position information from full
	// tuple enumeration.
	TierNormal
	// TierHard additionally applies cross-cage row/column elimination
	// using each cage's must-appear values.
	TierHard
)

// String names the tier, used in diagnostics and classifier results.
func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierEasy:
		return "easy"
	case TierNormal:
		return "normal"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// orderedTiers lists every propagation tier in ascending strength, the
// order ClassifyTierRequired tries them in (spec §4.7).
var orderedTiers = []Tier{TierEasy, TierNormal, TierHard}
