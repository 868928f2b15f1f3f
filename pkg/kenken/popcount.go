package kenken

import (
	"math/bits"
	"runtime"
)

// popcountProvider supplies the bit-population-count primitive the domain
// representation relies on for Count(). gokando's BitSetDomain.Count always
// calls bits.OnesCount64 directly; this module keeps that as the default
// fast path but names the choice explicitly as a pluggable collaborator
// (spec §6), since a runtime without a hardware POPCNT equivalent should
// still produce correct, merely slower, counts.
type popcountProvider interface {
	// Count returns the number of set bits in word.
	Count(word uint64) int
	// Name identifies the provider for diagnostics; never used to branch logic.
	Name() string
}

// hardwarePopcount delegates to math/bits, which the Go compiler intrinsifies
// into a single POPCNT-family instruction on architectures that have one.
type hardwarePopcount struct{}

func (hardwarePopcount) Count(word uint64) int { return bits.OnesCount64(word) }
func (hardwarePopcount) Name() string          { return "hardware" }

// portablePopcount is the SWAR fallback used when hardware dispatch is
// disabled (Config.DisableHardwarePopcount) or the target architecture has
// no known intrinsic. It is pure bit-twiddling, with no assembly and no
// architecture-specific behavior, so it is correct everywhere.
type portablePopcount struct{}

func (portablePopcount) Count(word uint64) int {
	word = word - ((word >> 1) & 0x5555555555555555)
	word = (word & 0x3333333333333333) + ((word >> 2) & 0x3333333333333333)
	word = (word + (word >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((word * 0x0101010101010101) >> 56)
}
func (portablePopcount) Name() string { return "portable" }

// hasIntrinsicPopcount lists the architectures on which Go's compiler emits
// a native population-count instruction for bits.OnesCount64. Selection
// happens once, deterministically, from runtime.GOARCH: no CPUID probing,
// no mutable global state, no function-pointer swap after process start.
func hasIntrinsicPopcount() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64", "ppc64", "ppc64le", "s390x":
		return true
	default:
		return false
	}
}

// selectPopcountProvider picks the provider for a single public operation's
// State, honoring Config.DisableHardwarePopcount. The result is never
// mutated after construction and is visible to the rest of the core only
// through the values Count returns.
func selectPopcountProvider(disableHardware bool) popcountProvider {
	if disableHardware || !hasIntrinsicPopcount() {
		return portablePopcount{}
	}
	return hardwarePopcount{}
}
