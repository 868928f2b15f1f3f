// Package kenken implements the core constraint-propagation solver of a
// KenKen puzzle engine: bitmask domains, cage-arithmetic deduction, a
// tiered fixed-point propagator, a minimum-remaining-values backtracking
// search, and a minimum-deduction-tier classifier. Puzzle generation,
// minimisation, wire formats, persistence, and language bindings are
// external collaborators built on top of the operations exported here.
package kenken

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxN is the largest grid size the single-word Domain representation can
// address: one bit per value, bit (v-1) for value v, in a uint64. The
// repository uses n <= 9 in practice; this caps n at 63 ("wide" mode in
// spec terms), which comfortably covers every word width the spec allows.
const MaxN = 63

// Domain is a bitmask over {1, ..., n}. Bit (v-1) set means value v remains
// possible. The zero Domain is the empty set, which signals local
// infeasibility. A Domain with exactly one bit set is a forced assignment.
//
// Domain is a plain value type, not a pointer: copying it copies the set,
// and all operations below return a new Domain rather than mutating in
// place, mirroring gokando's BitSetDomain immutability discipline while
// avoiding its slice-of-words allocation for the n <= 63 case this solver
// targets.
type Domain uint64

// FullDomain returns the domain containing every value in [1, n].
// n must be in [1, MaxN]; exceeding MaxN is a caller error (spec §4.1).
func FullDomain(n int) Domain {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^Domain(0)
	}
	return Domain(1<<uint(n)) - 1
}

// SingletonDomain returns the domain containing only v.
func SingletonDomain(v int) Domain {
	if v < 1 || v > MaxN {
		return 0
	}
	return 1 << uint(v-1)
}

// Count returns the number of values in the domain via hardware popcount
// when the platform offers one (math/bits intrinsifies this on amd64,
// arm64, and friends), falling back transparently elsewhere.
func (d Domain) Count() int {
	return bits.OnesCount64(uint64(d))
}

// countWith reports Count() using an explicitly selected provider, letting
// State honor Config.DisableHardwarePopcount (spec §6's popcount
// collaborator) without Domain itself needing to know about Config.
func (d Domain) countWith(p popcountProvider) int {
	return p.Count(uint64(d))
}

// Contains reports whether value v is still possible.
func (d Domain) Contains(v int) bool {
	if v < 1 || v > MaxN {
		return false
	}
	return d&(1<<uint(v-1)) != 0
}

// Insert returns d with v added.
func (d Domain) Insert(v int) Domain {
	if v < 1 || v > MaxN {
		return d
	}
	return d | (1 << uint(v-1))
}

// Remove returns d with v removed.
func (d Domain) Remove(v int) Domain {
	if v < 1 || v > MaxN {
		return d
	}
	return d &^ (1 << uint(v-1))
}

// IsEmpty reports whether the domain has no possible values.
func (d Domain) IsEmpty() bool { return d == 0 }

// IsSingleton reports whether exactly one value remains possible.
func (d Domain) IsSingleton() bool { return d != 0 && d&(d-1) == 0 }

// SingletonValue returns the sole value in the domain. If the domain is not
// a singleton it returns 0 for the empty domain and the lowest value
// otherwise; callers that rely on IsSingleton() first never observe that.
func (d Domain) SingletonValue() int {
	if d == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(d)) + 1
}

// Intersect returns the values present in both d and o.
func (d Domain) Intersect(o Domain) Domain { return d & o }

// Union returns the values present in either d or o.
func (d Domain) Union(o Domain) Domain { return d | o }

// Complement returns the values in [1, n] not present in d.
func (d Domain) Complement(n int) Domain { return FullDomain(n) &^ d }

// Min returns the lowest value in the domain, or 0 if it is empty.
func (d Domain) Min() int {
	if d == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(d)) + 1
}

// Max returns the highest value in the domain, or 0 if it is empty.
func (d Domain) Max() int {
	if d == 0 {
		return 0
	}
	return 64 - bits.LeadingZeros64(uint64(d))
}

// Iterate calls f for each value in the domain in ascending order,
// extracting the lowest set bit on each step (spec §4.1's iter(d)).
func (d Domain) Iterate(f func(v int)) {
	for d != 0 {
		v := bits.TrailingZeros64(uint64(d)) + 1
		f(v)
		d &= d - 1 // clear lowest set bit
	}
}

// Values returns the domain's members as a sorted slice. Convenience for
// tests and value-ordering heuristics; the hot propagation path uses
// Iterate to avoid the allocation.
func (d Domain) Values() []int {
	values := make([]int, 0, d.Count())
	d.Iterate(func(v int) { values = append(values, v) })
	return values
}

// String renders the domain as "{1,3,5}" or "{}" for the empty set, in the
// spirit of gokando's BitSetDomain.String (without the range-collapsing
// flourish, which that type needs for much larger domains than KenKen's).
func (d Domain) String() string {
	if d == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	first := true
	d.Iterate(func(v int) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.Itoa(v))
	})
	b.WriteByte('}')
	return b.String()
}
