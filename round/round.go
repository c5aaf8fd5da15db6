// Package round implements C4, the fixed-budget round (FBR): the state
// machine that, given an identical starting budget for every voter, repeatedly
// selects the project with the best effective vote count and grows its
// allocation until no candidate remains affordable.
//
// Run is the sole entry point. Everything else in this package is a
// supporting detail of one call to Run.
package round

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/equalshares/core"
	"github.com/katalvlaran/equalshares/shares"
	"github.com/katalvlaran/equalshares/tiebreak"
)

// ErrNotFullyFunded is re-exported so callers of round.Run can recognize a
// C2 failure without importing package shares directly. Spec §4.4.5 treats
// its appearance here as fatal: step 5 bounds the increment by the sum of
// supporter budgets, so C2 should never fail when invoked from within Run.
var ErrNotFullyFunded = shares.ErrNotFullyFunded

// noopTracker is used when Run is called with a nil Tracker, so the hot
// loop never has to branch on nilness.
type noopTracker struct{}

func (noopTracker) OnSelect(Observation) {}

// Run executes one fixed-budget round (spec §4.4): every voter starts with
// an identical budget of perVoterBudget; the round repeatedly picks the
// project with the best effective vote count (tiebreak.Select resolves
// ties), grows its allocation by the increment spec §4.4.3 step 5 defines,
// and charges its supporters via shares.Distribute, until no remaining
// project is affordable.
//
// graph is never mutated; Run works on a private clone so the caller's
// BidGraph can be reused across repeated calls from the outer escalation
// loop (package equalshares).
//
// tracker may be nil, in which case observations are discarded.
//
// Complexity: each selection step is O(P log P + P·S) where P is the
// number of remaining candidates and S the average supporter count; the
// number of steps is bounded because every step either retires a project
// or strictly shrinks some supporter's budget.
func Run(
	graph *core.BidGraph,
	minCost map[core.ProjectID]core.Money,
	maxBid map[core.ProjectID]core.Money,
	perVoterBudget core.Money,
	continuousCost core.Money,
	epsilon core.Money,
	tracker Tracker,
) (Result, error) {
	if tracker == nil {
		tracker = noopTracker{}
	}

	bids := graph.Clone()
	projects := graph.Projects()

	budgets := make(map[core.VoterID]core.Money, len(graph.Voters()))
	for _, v := range graph.Voters() {
		budgets[v] = perVoterBudget
	}

	states := make(map[core.ProjectID]*core.ProjectState, len(projects))
	for _, p := range projects {
		states[p] = core.NewProjectState(p, minCost[p], bids.SupporterCount(p))
	}

	payments := core.NewPayments(projects)

	for {
		order := orderByDescending(states)

		bestEffective := core.MoneyZero()
		var bestCandidates []core.ProjectID
		effectiveVotes := make(map[core.ProjectID]core.Money, len(order))

		for _, p := range order {
			state := states[p]
			if state.EffectiveVoteCount.Cmp(bestEffective) < 0 {
				break // order is sorted descending; nothing later can beat bestEffective
			}

			supporters := bids.Supporters(p)
			cost := state.CurrentCost // holds continuousCost once Phase == PhaseContinuous (set below)

			moneyBehind := core.MoneyZero()
			for _, v := range supporters {
				moneyBehind = moneyBehind.Add(budgets[v])
			}
			if moneyBehind.Cmp(cost) < 0 {
				state.EffectiveVoteCount = core.MoneyZero()
				continue
			}

			eff, ok := effectiveVoteScan(cost, supporters, budgets)
			if !ok {
				state.EffectiveVoteCount = core.MoneyZero()
				continue
			}
			effectiveVotes[p] = eff
			state.EffectiveVoteCount = eff

			switch eff.Cmp(bestEffective) {
			case 1:
				bestEffective = eff
				bestCandidates = []core.ProjectID{p}
			case 0:
				bestCandidates = append(bestCandidates, p)
			}
		}

		if len(bestCandidates) == 0 {
			break
		}

		candidates := make([]tiebreak.Candidate, len(bestCandidates))
		for i, p := range bestCandidates {
			candidates[i] = tiebreak.Candidate{
				Project:        p,
				CurrentCost:    states[p].CurrentCost,
				SupporterCount: bids.SupporterCount(p),
			}
		}
		chosen, err := tiebreak.Select(candidates)
		if err != nil {
			return Result{}, fmt.Errorf("round: select candidate: %w", err)
		}
		chosenState := states[chosen]

		delta := increment(chosenState, maxBid[chosen], bids, budgets)

		supporters := bids.Supporters(chosen)
		pairs := make([]shares.VoterBudget, len(supporters))
		for i, v := range supporters {
			pairs[i] = shares.VoterBudget{Voter: v, Budget: budgets[v]}
		}
		contributions, err := shares.Distribute(delta, pairs, epsilon)
		if err != nil {
			return Result{}, fmt.Errorf("round: charge supporters for project %d: %w", chosen, err)
		}

		stepPayments := make(map[core.VoterID]core.Money, len(contributions))
		for _, c := range contributions {
			budgets[c.Voter] = budgets[c.Voter].Sub(c.Amount)
			payments.Add(chosen, c.Voter, c.Amount)
			stepPayments[c.Voter] = c.Amount
		}
		chosenState.Allocation = chosenState.Allocation.Add(delta)

		tracker.OnSelect(Observation{
			Project:         chosen,
			Increment:       delta,
			EffectiveVotes:  cloneMoneyMap(effectiveVotes),
			VoterBudgets:    cloneMoneyMap(budgets),
			Payments:        stepPayments,
			RunningPayments: payments.Clone(),
		})

		if chosenState.Allocation.Cmp(maxBid[chosen]) >= 0 {
			chosenState.Phase = core.PhaseRetired
			chosenState.EffectiveVoteCount = core.MoneyZero()
			continue
		}

		chosenState.Phase = core.PhaseContinuous
		chosenState.CurrentCost = continuousCost
		for _, v := range supporters {
			bid, _ := bids.Bid(chosen, v)
			newBid := bid.Sub(delta)
			if newBid.Cmp(core.MoneyZero()) <= 0 {
				bids.RemoveBid(chosen, v)
			} else {
				bids.SetBid(chosen, v, newBid)
			}
		}
		chosenState.EffectiveVoteCount = core.MoneyFromInt(int64(bids.SupporterCount(chosen)))
	}

	nextCost := make(map[core.ProjectID]core.NextCost, len(projects))
	for _, p := range projects {
		switch states[p].Phase {
		case core.PhaseDiscrete:
			nextCost[p] = core.FixedNextCost(minCost[p])
		case core.PhaseContinuous:
			nextCost[p] = core.ContinuousNextCost()
		default:
			nextCost[p] = core.FixedNextCost(core.MoneyZero())
		}
	}

	allocation := make(map[core.ProjectID]core.Money, len(projects))
	for _, p := range projects {
		allocation[p] = states[p].Allocation
	}

	return Result{Allocation: allocation, NextCost: nextCost, Payments: payments}, nil
}

// increment computes Δ for the chosen project (spec §4.4.3 step 5).
func increment(
	chosen *core.ProjectState,
	maxBid core.Money,
	bids *core.BidGraph,
	budgets map[core.VoterID]core.Money,
) core.Money {
	if chosen.Phase == core.PhaseDiscrete {
		return chosen.CurrentCost
	}

	remainingCeiling := maxBid.Sub(chosen.Allocation)
	sumBudgets := core.MoneyZero()
	var smallestBid core.Money
	haveSmallestBid := false

	for _, v := range bids.Supporters(chosen.ID) {
		bid, _ := bids.Bid(chosen.ID, v)
		if !bid.IsPositive() || !budgets[v].IsPositive() {
			continue
		}
		sumBudgets = sumBudgets.Add(budgets[v])
		if !haveSmallestBid || bid.Cmp(smallestBid) < 0 {
			smallestBid = bid
			haveSmallestBid = true
		}
	}

	delta := remainingCeiling
	if haveSmallestBid {
		delta = delta.Min(smallestBid)
	}
	return delta.Min(sumBudgets)
}

// effectiveVoteScan walks supporters sorted ascending by current budget,
// mirroring C2's cascade, and reports the effective vote count at the
// point where the cascade first finds a supporter who can afford the
// equal share of the remaining cost (spec §4.4.3 step 2). ok is false if
// cost could not be raised even with every supporter paying its full
// budget (should not happen once the money-behind check has passed).
func effectiveVoteScan(cost core.Money, supporters []core.VoterID, budgets map[core.VoterID]core.Money) (core.Money, bool) {
	sorted := make([]core.VoterID, len(supporters))
	copy(sorted, supporters)
	sort.Slice(sorted, func(i, j int) bool {
		bi, bj := budgets[sorted[i]], budgets[sorted[j]]
		if c := bi.Cmp(bj); c != 0 {
			return c < 0
		}
		return sorted[i] < sorted[j]
	})

	denominator := len(sorted)
	paidSoFar := core.MoneyZero()
	for _, v := range sorted {
		if denominator == 0 {
			return core.Money{}, false
		}
		equalPayment := cost.Sub(paidSoFar).DivInt(denominator)
		if budgets[v].Cmp(equalPayment) < 0 {
			paidSoFar = paidSoFar.Add(budgets[v])
			denominator--
			continue
		}
		return cost.Quo(equalPayment), true
	}
	return core.Money{}, false
}

// orderByDescending lists the projects still in the running (a positive
// EffectiveVoteCount — see core.ProjectState) sorted by descending previous
// effective vote count (an optimization only, spec §4.4.3 step 3 — it must
// not change the outcome), ties broken by ascending project id for
// determinism.
func orderByDescending(states map[core.ProjectID]*core.ProjectState) []core.ProjectID {
	ids := make([]core.ProjectID, 0, len(states))
	for p, state := range states {
		if state.EffectiveVoteCount.IsPositive() {
			ids = append(ids, p)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		vi, vj := states[ids[i]].EffectiveVoteCount, states[ids[j]].EffectiveVoteCount
		if c := vi.Cmp(vj); c != 0 {
			return c > 0
		}
		return ids[i] < ids[j]
	})
	return ids
}

func cloneMoneyMap[K comparable](m map[K]core.Money) map[K]core.Money {
	out := make(map[K]core.Money, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
