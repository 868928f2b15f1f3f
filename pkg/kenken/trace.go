package kenken

// Sink receives named tracing events from the propagator and search driver
// (spec §6's "optional tracing sink" collaborator): propagator start/end,
// per-cage deduction, and search-node entry/backtrack. It mirrors the
// optional-hook shape gokando already uses for its own traversal callbacks
// (katalvlaran/lvlath's BFSOptions.OnVisit/OnEnqueue/OnDequeue), rather than
// introducing a logging dependency this module has no other use for.
//
// When no Sink is attached, Config.Trace defaults to noopSink{}, whose
// methods the compiler can inline away to nothing: no allocation, no call
// that crosses a boundary it cannot see through.
type Sink interface {
	PropagateStart(tier Tier)
	PropagateEnd(tier Tier, result propagationResult)
	CageDeduced(cageIndex int, op Operator)
	SearchNodeEntered(depth int)
	SearchBacktrack(depth int)
}

// noopSink implements Sink with empty methods; it is the zero-cost default.
type noopSink struct{}

func (noopSink) PropagateStart(Tier)                  {}
func (noopSink) PropagateEnd(Tier, propagationResult) {}
func (noopSink) CageDeduced(int, Operator)            {}
func (noopSink) SearchNodeEntered(int)                {}
func (noopSink) SearchBacktrack(int)                  {}

var defaultSink Sink = noopSink{}
