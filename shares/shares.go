// Package shares implements C2, the cost-sharing primitive: splitting a
// project's cost across its current supporters as evenly as possible,
// with supporters who can't afford an equal share instead paying their
// entire remaining budget while the others absorb the difference.
//
// Distribute is the sole entry point. It is a pure function: given the
// same cost and (voter, budget) pairs in any order, it always returns the
// same contributions (spec's ordering guarantee, §4.2.1) because it sorts
// internally rather than trusting caller order.
package shares

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/equalshares/core"
)

// ErrNotFullyFunded indicates the sorted cascade could not raise the full
// cost from the supplied budgets (remaining_cost exceeded the epsilon
// tolerance after exhausting every supporter). Callers of Distribute must
// verify affordability before calling it (spec §4.2.2); seeing this error
// in practice indicates an internal inconsistency upstream.
var ErrNotFullyFunded = errors.New("shares: project not fully funded")

// NotFullyFundedError carries the diagnostic detail behind ErrNotFullyFunded.
// Use errors.As to recover Cost/Remaining, or errors.Is(err,
// ErrNotFullyFunded) to just branch on the failure kind.
type NotFullyFundedError struct {
	Cost      core.Money
	Remaining core.Money
}

func (e *NotFullyFundedError) Error() string {
	return fmt.Sprintf("shares: project not fully funded: cost=%s remaining=%s", e.Cost, e.Remaining)
}

func (e *NotFullyFundedError) Unwrap() error { return ErrNotFullyFunded }

// VoterBudget is one supporter's current remaining budget, the input shape
// Distribute sorts internally.
type VoterBudget struct {
	Voter  core.VoterID
	Budget core.Money
}

// Contribution is one supporter's share of a funded cost.
type Contribution struct {
	Voter  core.VoterID
	Amount core.Money
}

// Distribute splits cost across pairs using the sorted equal-split with
// cascading fallback (spec §4.2): sort ascending by budget (ties broken by
// ascending voter id for reproducibility), then walk the list proposing an
// equal share of whatever cost remains among the supporters not yet
// visited; a supporter who can't afford that share instead pays its entire
// budget and drops out, shrinking the denominator for everyone after it.
//
// cost must be strictly positive and pairs non-empty; Distribute itself
// does not enforce this (callers in package round only ever invoke it
// after confirming affordability), but it degrades gracefully: a zero
// cost returns zero contributions for everyone.
//
// Returns ErrNotFullyFunded (as a *NotFullyFundedError) if, after every
// supporter has paid what it can, more than epsilon of cost remains
// unraised.
//
// Complexity: O(n log n) for the sort, O(n) for the walk.
func Distribute(cost core.Money, pairs []VoterBudget, epsilon core.Money) ([]Contribution, error) {
	sorted := make([]VoterBudget, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		if c := sorted[i].Budget.Cmp(sorted[j].Budget); c != 0 {
			return c < 0
		}
		return sorted[i].Voter < sorted[j].Voter
	})

	n := len(sorted)
	out := make([]Contribution, 0, n)
	remaining := cost

	for i, pair := range sorted {
		denominator := n - i
		share := remaining.DivInt(denominator)

		var contribution core.Money
		if pair.Budget.Cmp(share) >= 0 {
			contribution = share
		} else {
			contribution = pair.Budget
		}

		out = append(out, Contribution{Voter: pair.Voter, Amount: contribution})
		remaining = remaining.Sub(contribution)
	}

	if remaining.Cmp(epsilon) > 0 {
		return nil, &NotFullyFundedError{Cost: cost, Remaining: remaining}
	}

	return out, nil
}
