// Package normalize implements C1, the input normaliser: it turns the raw,
// externally-shaped bid table into the form every later stage relies on —
// zero bids dropped, bids from unknown voters dropped, and a per-project
// maximum bid derived (the ceiling a project's allocation may never
// exceed).
//
// normalize.Run is total over well-formed input. Malformed input (a
// negative amount, or a bid referencing a project id the caller never
// declared) is a precondition violation that the caller (the public
// facade) must have already rejected; Run still reports it via the same
// sentinel errors core.BidGraph.PutBid would, so a caller that skips validation
// fails loudly rather than silently producing a bad allocation.
package normalize

import (
	"github.com/katalvlaran/equalshares/core"
)

// Run drops zero bids and bids from voters outside the supplied voter
// list, then computes each project's maximum bid. It returns a fresh
// BidGraph (the caller's input is never mutated) plus the MaxBid mapping.
//
// Complexity: O(Σ_p |bids[p]|).
func Run(
	voters []core.VoterID,
	projects []core.ProjectID,
	bids map[core.ProjectID]map[core.VoterID]core.Money,
) (*core.BidGraph, map[core.ProjectID]core.Money, error) {
	graph, err := core.NewBidGraph(voters)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range projects {
		graph.AddProject(p)
	}

	for project, byVoter := range bids {
		if !graph.HasProject(project) {
			return nil, nil, core.ErrUnknownProject
		}
		for voter, amount := range byVoter {
			if amount.IsZero() {
				continue // drop_zero_bids
			}
			if amount.IsNegative() {
				return nil, nil, core.ErrNegativeAmount
			}
			if !graph.HasVoter(voter) {
				continue // drop_unknown_voters
			}
			// PutBid re-checks voter/project membership, which always
			// succeeds here given the guards above; the error return is
			// unreachable but kept so a future refactor can't silently
			// swallow a real failure.
			if err := graph.PutBid(project, voter, amount); err != nil {
				return nil, nil, err
			}
		}
	}

	maxBid := make(map[core.ProjectID]core.Money, len(projects))
	for _, p := range projects {
		best := core.MoneyZero()
		for _, voter := range graph.Supporters(p) {
			amt, _ := graph.Bid(p, voter)
			best = best.Max(amt)
		}
		maxBid[p] = best
	}

	return graph, maxBid, nil
}
