package kenken

// applyOperator evaluates a cage's operator over a complete tuple of values,
// one per cage cell in Cage.Cells order. The second return value is false
// when the operator is undefined for this tuple (Div's dividend not a
// multiple of its divisor); such tuples are simply infeasible, not errors.
func applyOperator(op Operator, values []int) (int, bool) {
	switch op {
	case OpEq:
		return values[0], true
	case OpAdd:
		sum := 0
		for _, v := range values {
			sum += v
		}
		return sum, true
	case OpMul:
		prod := 1
		for _, v := range values {
			prod *= v
		}
		return prod, true
	case OpSub:
		a, b := values[0], values[1]
		if a < b {
			a, b = b, a
		}
		return a - b, true
	case OpDiv:
		a, b := values[0], values[1]
		if a < b {
			a, b = b, a
		}
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	default:
		return 0, false
	}
}

// cageEnumeration holds the feasible tuples enumerateTuples collects before
// giving up and reporting truncation; deduceCage interprets truncation as
// "hand off to the large-cage backend, or skip this cage's deduction".
type cageEnumeration struct {
	tuples    [][]int
	truncated bool
}

// enumerateTuples performs a pruned depth-first search over the cartesian
// product of domains (one per cage cell), collecting every value assignment
// whose operator result equals target, up to cap tuples (spec §4.3's K_MAX
// truncation). Add and Mul cages prune partial sums/products against target
// as they go; Eq/Sub/Div cages are always 1 or 2 cells, so no pruning is
// needed beyond the operator check itself.
func enumerateTuples(op Operator, target int, domains []Domain, cap int) cageEnumeration {
	var out cageEnumeration
	values := make([]int, len(domains))

	var recurse func(pos, partialSum, partialProd int) bool // returns false to stop
	recurse = func(pos, partialSum, partialProd int) bool {
		if len(out.tuples) >= cap {
			out.truncated = true
			return false
		}
		if pos == len(domains) {
			if result, ok := applyOperator(op, values); ok && result == target {
				tuple := make([]int, len(values))
				copy(tuple, values)
				out.tuples = append(out.tuples, tuple)
			}
			return true
		}

		stop := false
		domains[pos].Iterate(func(v int) {
			if stop {
				return
			}
			switch op {
			case OpAdd:
				if partialSum+v > target {
					return // every domain value is positive, sum only grows
				}
			case OpMul:
				if partialProd*v > target {
					return
				}
			}
			values[pos] = v
			if !recurse(pos+1, partialSum+v, partialProd*v) {
				stop = true
			}
		})
		return !stop
	}

	recurse(0, 0, 1)
	return out
}

// cageDeduction is a cage's arithmetic deduction result at every tier's
// strength at once, so applyCageDomains can pick the one the caller's
// current tier is entitled to:
//
//   - anyMask is the single pooled union of every value used anywhere by
//     any feasible tuple, the same mask applied to every cage cell
//     (TierEasy, per spec §4.3's "any-mask").
//   - refined narrows each cell individually to the union of values some
//     feasible tuple assigns *that position* (TierNormal and above — a
//     strictly tighter, per-position refinement of anyMask).
//   - mustAppear is the intersection, across all feasible tuples, of the
//     set of values the tuple uses anywhere in the cage (TierHard's
//     cross-cage elimination input).
type cageDeduction struct {
	anyMask    Domain
	refined    []Domain
	mustAppear Domain
}

// deduceCage narrows a cage's cell domains using tuple enumeration. tier
// only affects mustAppear, which is zeroed below TierHard; the caller
// (propagateCages, through applyCageDomains) picks
// which of anyMask/refined to apply based on its own tier. A nil result
// with no error means the cage could not be narrowed this pass (tuple
// enumeration truncated and the configured LargeCageBackend declined);
// callers must treat that as "leave domains unchanged", never as a
// contradiction.
func deduceCage(cage *Cage, domains []Domain, n int, cfg Config, tier Tier) (*cageDeduction, error) {
	for _, d := range domains {
		if d.IsEmpty() {
			return nil, errContradiction
		}
	}

	enum := enumerateTuples(cage.Op, cage.Target, domains, cfg.TupleCap)
	if enum.truncated {
		if refined, ok := cfg.LargeCageBackend.Deduce(cage, domains, n); ok {
			return &cageDeduction{anyMask: unionAll(refined), refined: refined}, nil
		}
		return nil, nil
	}
	if len(enum.tuples) == 0 {
		return nil, errContradiction
	}

	refined := make([]Domain, len(domains))
	anyMask := Domain(0)
	mustAppear := FullDomain(n)
	for _, tuple := range enum.tuples {
		used := Domain(0)
		for i, v := range tuple {
			refined[i] = refined[i].Insert(v)
			used = used.Insert(v)
		}
		anyMask = anyMask.Union(used)
		mustAppear = mustAppear.Intersect(used)
	}

	for _, d := range refined {
		if d.IsEmpty() {
			return nil, errContradiction
		}
	}

	if tier < TierHard {
		mustAppear = 0
	}
	return &cageDeduction{anyMask: anyMask, refined: refined, mustAppear: mustAppear}, nil
}

// unionAll folds a slice of domains together, used to derive an any-mask
// equivalent from a large-cage backend's per-position result.
func unionAll(domains []Domain) Domain {
	out := Domain(0)
	for _, d := range domains {
		out = out.Union(d)
	}
	return out
}
