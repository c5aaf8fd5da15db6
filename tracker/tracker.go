// Package tracker provides ready-made round.Tracker implementations: a
// no-op default and a simple recording tracker for tests and demo output.
// Neither holds process-wide state — each is a value the caller owns and
// threads through explicitly (spec §9, "no global mutable logger").
package tracker

import "github.com/katalvlaran/equalshares/round"

// Noop discards every observation. A caller that wants an explicit no-op
// Tracker can pass it; round.Run substitutes its own private no-op when
// handed a nil Tracker.
type Noop struct{}

// OnSelect implements round.Tracker.
func (Noop) OnSelect(round.Observation) {}

var _ round.Tracker = Noop{}

// Recording accumulates every observation it receives, in order. It is not
// safe for concurrent use by multiple goroutines — a fixed-budget round
// runs single-threaded per spec §5, and Recording mirrors that.
type Recording struct {
	Observations []round.Observation
}

// NewRecording returns an empty Recording tracker.
func NewRecording() *Recording {
	return &Recording{}
}

// OnSelect implements round.Tracker.
func (r *Recording) OnSelect(obs round.Observation) {
	r.Observations = append(r.Observations, obs)
}

var _ round.Tracker = (*Recording)(nil)
