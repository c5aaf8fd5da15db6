package round

import "github.com/katalvlaran/equalshares/core"

// Tracker observes a fixed-budget round one selection step at a time. It is
// the only extension point this package exposes in place of a process-wide
// logger: the engine must stay synchronous and callable concurrently on
// disjoint inputs, so a Tracker is supplied by the caller and threaded
// through explicitly rather than held in a package-level variable.
//
// Implementations must not mutate any field of the Observation they
// receive; Run hands over defensive copies precisely so they could, but
// doing so would not be observed by the engine and is a misuse of the
// interface.
type Tracker interface {
	OnSelect(Observation)
}

// Observation is a snapshot of one project-selection step within a
// fixed-budget round (spec §4.5.3): which project was chosen, how much its
// allocation grew, and the full effective-vote-count / budget / payment
// state at that instant.
type Observation struct {
	// Project is the project selected this step.
	Project core.ProjectID

	// Increment is the amount just added to Project's allocation.
	Increment core.Money

	// EffectiveVotes is every candidate's effective vote count as computed
	// during this step's selection scan, keyed by project id.
	EffectiveVotes map[core.ProjectID]core.Money

	// VoterBudgets is every voter's remaining budget after this step's
	// charge has been applied.
	VoterBudgets map[core.VoterID]core.Money

	// Payments is this step's contribution from each supporter of
	// Project (not the running total — just this increment).
	Payments map[core.VoterID]core.Money

	// RunningPayments is the full accumulated payment table across every
	// project, as of immediately after this step's charge.
	RunningPayments core.Payments
}
