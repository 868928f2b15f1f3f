package kenken

// DefaultTupleCap is the suggested K_MAX from spec §4.3: the tuple
// enumerator for an Add/Mul cage truncates after this many feasible tuples,
// and the cage's deduction is then handed to Config.LargeCageBackend or, if
// that declines, skipped for the pass, leaving its domains unchanged (still
// sound — it never removes a value some valid tuple uses). Treated as
// tunable, per spec's Open Questions.
const DefaultTupleCap = 512

// Config is the feature-flag surface of spec §6: selection of LCV ordering,
// hardware popcount dispatch, the large-cage fallback backend, the tuple
// enumeration cap, and an optional tracing sink. It is passed by value into
// the public operations, following gokando's StrategyConfig /
// SolverConfig(DefaultStrategyConfig/DefaultSolverConfig) pattern of a
// plain options struct plus a constructor.
type Config struct {
	// EnableLCV turns on least-constraining-value ordering in the search
	// driver (spec §4.6). Off by default: spec notes LCV is "often inert"
	// and its scoring cost is measurable, so it must be opt-in.
	EnableLCV bool

	// DisableHardwarePopcount forces the portable SWAR popcount fallback
	// instead of math/bits' hardware-intrinsified path. Exists for
	// reproducible benchmarking across heterogeneous machines; solving
	// correctness never depends on which is active.
	DisableHardwarePopcount bool

	// TupleCap bounds Add/Mul tuple enumeration (K_MAX). Zero means
	// DefaultTupleCap.
	TupleCap int

	// LargeCageBackend is consulted when a cage's tuple enumeration would
	// exceed TupleCap. Nil means noLargeCageBackend{} (always declines).
	LargeCageBackend LargeCageBackend

	// Trace receives propagator/search tracing events. Nil means the
	// zero-cost noopSink{}.
	Trace Sink
}

// DefaultConfig returns the solver's default configuration: no LCV,
// hardware popcount enabled, DefaultTupleCap, no large-cage backend, no
// tracing.
func DefaultConfig() Config {
	return Config{
		EnableLCV:               false,
		DisableHardwarePopcount: false,
		TupleCap:                DefaultTupleCap,
		LargeCageBackend:        noLargeCageBackend{},
		Trace:                   defaultSink,
	}
}

// normalized fills in zero-valued fields with their defaults, so a caller
// supplying a partially populated Config (or the Config zero value) still
// gets a usable one. Mirrors gokando's NewFDStoreWithConfig nil-config
// guard (`if config == nil { config = DefaultSolverConfig() }`).
func (c Config) normalized() Config {
	if c.TupleCap <= 0 {
		c.TupleCap = DefaultTupleCap
	}
	if c.LargeCageBackend == nil {
		c.LargeCageBackend = noLargeCageBackend{}
	}
	if c.Trace == nil {
		c.Trace = defaultSink
	}
	return c
}
