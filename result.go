package equalshares

import "github.com/katalvlaran/equalshares/core"

// Result is Compute's output: the final per-project allocation and the
// per-voter payments that funded it (spec §6.1's "two aggregates").
type Result struct {
	Allocation map[core.ProjectID]core.Money
	Payments   core.Payments

	voterCount int
}

// AveragePerVoter divides project's allocation evenly across the number of
// voters that took part in the computation. This is a read-only summary
// accessor recovered from the original's calculate_average_allocations
// (SPEC_FULL.md §C.5) — not the excluded "average-first" algorithm
// variant (spec §1 Non-goals), just a derived view over an already-final
// allocation.
func (r Result) AveragePerVoter(project core.ProjectID) core.Money {
	if r.voterCount == 0 {
		return core.MoneyZero()
	}
	return r.Allocation[project].DivInt(r.voterCount)
}
