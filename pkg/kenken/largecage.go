package kenken

// LargeCageBackend is the optional external collaborator of spec §6,
// invoked by the cage-arithmetic deduction step when tuple enumeration for
// an Add/Mul cage would exceed Config.TupleCap. It must either return
// refined per-cell domains or report that it cannot help, in which case the
// deduction step leaves domains unchanged (still sound, per spec's Large-
// cage fallback design note: "Option (a) MUST remain the default").
//
// Soundness requirement: an implementation MUST NOT remove any value that
// some valid cage completion uses. This module ships no concrete backend
// (no SAT solver, no exact-cover matrix solver); those are explicitly out
// of scope per spec §1, invoked only through this narrow interface when
// present.
type LargeCageBackend interface {
	// Deduce attempts to narrow domains for an over-large cage. ok is false
	// when the backend declines to help; callers must then leave domains
	// untouched, not treat it as a contradiction.
	Deduce(cage *Cage, cellDomains []Domain, n int) (refined []Domain, ok bool)
}

// noLargeCageBackend is the always-declines default, matching the spec's
// "skipped safely" option (a).
type noLargeCageBackend struct{}

func (noLargeCageBackend) Deduce(*Cage, []Domain, int) ([]Domain, bool) {
	return nil, false
}
