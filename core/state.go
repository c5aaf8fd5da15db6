package core

// Phase is the lifecycle state of a project within one fixed-budget round.
type Phase int

const (
	// PhaseDiscrete is the state before a project has received any funding:
	// CurrentCost equals MinCost and Allocation is zero.
	PhaseDiscrete Phase = iota

	// PhaseContinuous is the state after a project has been funded at or
	// above MinCost but before it reaches its ceiling: further funding is
	// added incrementally, and CurrentCost holds the sentinel increment
	// value rather than a real monetary amount.
	PhaseContinuous

	// PhaseRetired is a terminal state: either the project reached its
	// ceiling, or it is no longer affordable. No further payments are
	// possible in this round.
	PhaseRetired
)

// String renders Phase for diagnostics/Tracker snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseDiscrete:
		return "discrete"
	case PhaseContinuous:
		return "continuous"
	case PhaseRetired:
		return "retired"
	default:
		return "unknown"
	}
}

// ProjectState is the live, per-round state of one project, recreated from
// scratch at the start of every fixed-budget round.
type ProjectState struct {
	ID ProjectID

	// Phase is this project's current lifecycle stage.
	Phase Phase

	// Allocation is the total amount funded so far this round. It is
	// monotonically non-decreasing and bounded by [0, MaxBid].
	Allocation Money

	// CurrentCost is the cost at which this project would next be
	// considered. While Phase == PhaseDiscrete it equals the project's
	// MinCost. While Phase == PhaseContinuous it holds the sentinel
	// increment value (see NextCost for the collision-safe variant used
	// once a round hands this back to its caller).
	CurrentCost Money

	// EffectiveVoteCount is this project's candidacy weight for the
	// selection scan's sort order and early-exit cutoff: the number of
	// current supporters until a scan has computed its effective vote count
	// (and again right after it enters PhaseContinuous), replaced by the
	// exact effective-vote-count result after each scan that considers
	// it. Zero means the project is not a candidate this round
	// (either PhaseRetired, or ruled out as unaffordable) — this is
	// distinct from Phase, since a discrete project ruled out as
	// unaffordable this round stays PhaseDiscrete (spec §4.4.3 step 3/4).
	EffectiveVoteCount Money
}

// NewProjectState builds the initial per-round state for one project: it
// starts in PhaseDiscrete with CurrentCost == minCost and an
// EffectiveVoteCount equal to its supporter count if min_cost is positive
// and it has at least one supporter, otherwise it starts PhaseRetired
// (nothing to fund, spec §4.4.1).
func NewProjectState(id ProjectID, minCost Money, supporterCount int) *ProjectState {
	if !minCost.IsPositive() || supporterCount <= 0 {
		return &ProjectState{ID: id, Phase: PhaseRetired, Allocation: MoneyZero(), CurrentCost: MoneyZero()}
	}
	return &ProjectState{
		ID:                 id,
		Phase:              PhaseDiscrete,
		Allocation:         MoneyZero(),
		CurrentCost:        minCost,
		EffectiveVoteCount: MoneyFromInt(int64(supporterCount)),
	}
}

// NextCost is a tagged variant for a project's "cost at which it would next
// be considered" as reported *out* of a fixed-budget round, to the outer
// escalation loop. Unlike ProjectState.CurrentCost (which legitimately
// holds the literal sentinel value during continuous-phase tie-breaking,
// matching the algorithm's own comparison rules), NextCost forces callers
// to branch on Continuous explicitly before touching a monetary amount —
// so a sentinel can never be silently compared against a real cost in the
// outer loop's exhaustiveness arithmetic (spec's "sentinel values" design
// note).
type NextCost struct {
	continuous bool
	fixed      Money
}

// FixedNextCost reports a concrete next-increment cost (discrete phase) or
// zero (retired with no further affordable increment).
func FixedNextCost(amount Money) NextCost {
	return NextCost{fixed: amount}
}

// ContinuousNextCost reports that the project is in its continuous phase:
// the next increment size depends on run-time supporter budgets, not on a
// fixed monetary amount.
func ContinuousNextCost() NextCost {
	return NextCost{continuous: true}
}

// IsContinuous reports whether this is the continuous-phase marker.
func (n NextCost) IsContinuous() bool {
	return n.continuous
}

// Amount returns the fixed cost and true, or (zero, false) if this is the
// continuous-phase marker. Callers must check the bool before using the
// amount.
func (n NextCost) Amount() (Money, bool) {
	if n.continuous {
		return Money{}, false
	}
	return n.fixed, true
}
