package equalshares

import (
	"github.com/decred/slog"

	"github.com/katalvlaran/equalshares/core"
	"github.com/katalvlaran/equalshares/round"
)

// Options bundles the spec's §6.2 numeric knobs plus the optional
// observation hooks, following the teacher's Options/DefaultOptions
// pattern (tsp.Options, flow.FlowOptions, builder.Options). There is no
// env-var or flag parsing in here — this is a library, and configuration
// is a plain struct the caller constructs directly.
type Options struct {
	// ContinuousCost is the sentinel "cost" reported for a project in its
	// continuous phase (spec §6.2 CONTINUOUS_COST). Default 1.
	ContinuousCost core.Money

	// DistributionParameter controls the resolution of C5's budget
	// escalation: each step raises the per-voter budget by
	// N_voters * budget / DistributionParameter. Default 100.
	DistributionParameter int64

	// MaxRounds caps the number of escalation iterations C5 will run
	// before forcing termination (a safety net, not a failure). Default
	// 1000.
	MaxRounds int

	// Epsilon is the rounding tolerance C2 accepts before declaring a
	// project not fully funded. Default 1 unit.
	Epsilon core.Money

	// Tracker observes each selection step of every fixed-budget round,
	// spec §4.5.3. Defaults to a no-op.
	Tracker round.Tracker

	// Logger receives free-form diagnostic trace lines (not part of the
	// typed Tracker contract). Defaults to slog.Disabled.
	Logger slog.Logger
}

// DefaultOptions returns the spec's §6.2 default knob values with no
// Tracker and a disabled Logger.
func DefaultOptions() Options {
	return Options{
		ContinuousCost:        core.MoneyFromInt(1),
		DistributionParameter: 100,
		MaxRounds:             1000,
		Epsilon:               core.MoneyFromInt(1),
		Tracker:               nil,
		Logger:                slog.Disabled,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ContinuousCost == (core.Money{}) {
		o.ContinuousCost = d.ContinuousCost
	}
	if o.DistributionParameter == 0 {
		o.DistributionParameter = d.DistributionParameter
	}
	if o.MaxRounds == 0 {
		o.MaxRounds = d.MaxRounds
	}
	if o.Epsilon == (core.Money{}) {
		o.Epsilon = d.Epsilon
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}
