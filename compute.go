package equalshares

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/equalshares/core"
	"github.com/katalvlaran/equalshares/normalize"
	"github.com/katalvlaran/equalshares/round"
)

// Compute is the sole public operation (C6): the rest of this package's
// exports (Options, Result) exist to support this one call.
//
// Compute runs the full min/max Method of Equal Shares over voters,
// ranges, bids, and budget (spec §4.6). It validates every precondition
// before doing any work and returns ErrInvalidInput (wrapping the specific
// violation) if one fails; a zero Result is returned alongside any error.
//
// voters, ranges, and bids are read, never mutated; Compute's result is
// independent of the caller's structures once it returns.
func Compute(
	voters []core.VoterID,
	ranges map[core.ProjectID]core.ProjectRange,
	bids map[core.ProjectID]map[core.VoterID]core.Money,
	budget core.Money,
	opts Options,
) (Result, error) {
	opts = opts.withDefaults()

	if err := validateInput(voters, ranges, budget); err != nil {
		return Result{}, err
	}

	projects := make([]core.ProjectID, 0, len(ranges))
	minCost := make(map[core.ProjectID]core.Money, len(ranges))
	maxCost := make(map[core.ProjectID]core.Money, len(ranges))
	for p, r := range ranges {
		projects = append(projects, p)
		minCost[p] = r.MinCost
		maxCost[p] = r.MaxCost
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i] < projects[j] })

	graph, bidMaxima, err := normalize.Run(voters, projects, bids)
	if err != nil {
		return Result{}, wrapCoreError(err)
	}

	// The effective per-project ceiling is the smaller of the largest
	// single bid it ever received and its declared max_cost: this is what
	// guarantees postcondition P2 (allocation never exceeds max_cost) by
	// construction rather than relying on the caller never overbidding.
	ceiling := make(map[core.ProjectID]core.Money, len(projects))
	for _, p := range projects {
		ceiling[p] = bidMaxima[p].Min(maxCost[p])
	}

	nVoters := len(voters)
	perVoterBudget := budget.FloorDivInt(nVoters)

	result, err := round.Run(graph, minCost, ceiling, perVoterBudget, opts.ContinuousCost, opts.Epsilon, opts.Tracker)
	if err != nil {
		return Result{}, fmt.Errorf("equalshares: initial round: %w", err)
	}

	increment := budget.MulInt(nVoters).Quo(core.MoneyFromInt(opts.DistributionParameter))

	for roundCount := 1; roundCount <= opts.MaxRounds; roundCount++ {
		if isExhaustive(projects, result, budget, ceiling, opts.ContinuousCost) {
			break
		}

		perVoterBudget = perVoterBudget.Add(increment)
		candidate, err := round.Run(graph, minCost, ceiling, perVoterBudget, opts.ContinuousCost, opts.Epsilon, opts.Tracker)
		if err != nil {
			return Result{}, fmt.Errorf("equalshares: escalation round %d: %w", roundCount, err)
		}

		if totalAllocation(candidate.Allocation).Cmp(budget) > 0 {
			opts.Logger.Debugf("equalshares: escalation round %d would exceed budget, discarding", roundCount)
			break
		}
		result = candidate
	}

	if err := checkAllocations(projects, result.Allocation, minCost, maxCost); err != nil {
		return Result{}, err
	}

	return Result{
		Allocation: result.Allocation,
		Payments:   result.Payments,
		voterCount: nVoters,
	}, nil
}

func validateInput(voters []core.VoterID, ranges map[core.ProjectID]core.ProjectRange, budget core.Money) error {
	if budget.IsNegative() {
		return invalidInput(fmt.Errorf("budget must be >= 0, got %s", budget))
	}
	if len(voters) == 0 {
		return invalidInput(errors.New("voters must be non-empty"))
	}

	seenVoters := make(map[core.VoterID]struct{}, len(voters))
	for _, v := range voters {
		if _, dup := seenVoters[v]; dup {
			return invalidInput(fmt.Errorf("duplicate voter id %d", v))
		}
		seenVoters[v] = struct{}{}
	}

	for p, r := range ranges {
		if err := r.Validate(); err != nil {
			return invalidInput(fmt.Errorf("project %d: %w", p, err))
		}
	}

	return nil
}

// isExhaustive implements spec §4.5.1 step 1: the current outcome cannot
// be improved by raising the per-voter budget further.
func isExhaustive(
	projects []core.ProjectID,
	result round.Result,
	budget core.Money,
	ceiling map[core.ProjectID]core.Money,
	continuousCost core.Money,
) bool {
	for _, p := range projects {
		nextCost := result.NextCost[p]
		amount, isFixed := nextCost.Amount()
		if !isFixed {
			// A continuous-phase project's nextCost is a sentinel, not a
			// real increment size; the escalation check treats it as the
			// tiny continuousCost placeholder (the original's literal use
			// of CONTINUOUS_COST here), which is enough to decide "still
			// has room to grow". Inside round.Run the same value is the
			// project's CurrentCost, so it also takes part in the
			// effective-vote scan and the smallest-cost tie-break.
			amount = continuousCost
		}
		if !amount.IsPositive() {
			continue // (iii) nothing further to fund
		}

		projected := result.Allocation[p].Add(amount)
		wouldBustBudget := projected.Cmp(budget) > 0
		wouldExceedCeiling := projected.Cmp(ceiling[p]) > 0
		if !wouldBustBudget && !wouldExceedCeiling {
			return false
		}
	}
	return true
}

func totalAllocation(allocation map[core.ProjectID]core.Money) core.Money {
	total := core.MoneyZero()
	for _, a := range allocation {
		total = total.Add(a)
	}
	return total
}

// checkAllocations is the recovered safety net from the original's
// check_allocations (SPEC_FULL.md §C.5): it re-verifies postcondition P2
// directly against the caller's declared ranges. It should never fire —
// the ceiling clamp in Compute already guarantees it by construction — so
// tripping it indicates a bug in this package, not a caller error.
func checkAllocations(
	projects []core.ProjectID,
	allocation map[core.ProjectID]core.Money,
	minCost, maxCost map[core.ProjectID]core.Money,
) error {
	for _, p := range projects {
		amt := allocation[p]
		if amt.IsZero() {
			continue
		}
		if amt.Cmp(minCost[p]) < 0 || amt.Cmp(maxCost[p]) > 0 {
			return fmt.Errorf("%w: project %d allocation %s outside [%s, %s]",
				ErrAllocationOutOfRange, p, amt, minCost[p], maxCost[p])
		}
	}
	return nil
}
