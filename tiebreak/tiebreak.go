// Package tiebreak implements C3, the lexicographic tie-break order used to
// select a single winning project among the candidates with the best
// effective cost-per-vote in a fixed-budget round.
//
// Select is the sole entry point: it narrows a candidate list down by
// (1) smallest current cost, (2) largest supporter count, (3) smallest
// project id, in that order, stopping as soon as one candidate remains.
// The third criterion is a total order over distinct ids, so Select never
// needs to report a tie back to its own caller — but it still validates
// that invariant rather than assuming it, because an empty candidate list
// at the call site is a precondition violation worth failing loudly on.
package tiebreak

import (
	"errors"

	"github.com/katalvlaran/equalshares/core"
)

// ErrNoCandidates indicates Select was called with an empty candidate list.
// This is always a caller bug: the fixed-budget round must only call
// Select when at least one project is still in contention.
var ErrNoCandidates = errors.New("tiebreak: no candidates")

// ErrTieUnresolved indicates more than one candidate survived all three
// ordering criteria — only possible if the candidate set carried duplicate
// project ids, since id order is total over distinct ids. This is a safety
// net (spec §4.3), not an expected path.
var ErrTieUnresolved = errors.New("tiebreak: tie could not be resolved")

// Candidate is one project's standing at the moment a winner must be
// chosen: its current cost (the quantity being minimized) and its
// supporter count (the quantity being maximized as the second criterion).
type Candidate struct {
	Project        core.ProjectID
	CurrentCost    core.Money
	SupporterCount int
}

// Select narrows candidates to the single best one using the three-level
// lexicographic order (spec §4.3): smallest CurrentCost, then largest
// SupporterCount, then smallest Project id. The final criterion is a total
// order over distinct ids, so exactly one candidate survives it unless the
// list repeats a project id, in which case Select returns ErrTieUnresolved.
//
// Select never mutates candidates and does not assume any particular
// input order.
func Select(candidates []Candidate) (core.ProjectID, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	remaining := candidates

	bestCost := remaining[0].CurrentCost
	for _, c := range remaining[1:] {
		if c.CurrentCost.Cmp(bestCost) < 0 {
			bestCost = c.CurrentCost
		}
	}
	remaining = filter(remaining, func(c Candidate) bool {
		return c.CurrentCost.Cmp(bestCost) == 0
	})

	bestCount := remaining[0].SupporterCount
	for _, c := range remaining[1:] {
		if c.SupporterCount > bestCount {
			bestCount = c.SupporterCount
		}
	}
	remaining = filter(remaining, func(c Candidate) bool {
		return c.SupporterCount == bestCount
	})

	winner := remaining[0].Project
	for _, c := range remaining[1:] {
		if c.Project < winner {
			winner = c.Project
		}
	}
	remaining = filter(remaining, func(c Candidate) bool {
		return c.Project == winner
	})
	if len(remaining) > 1 {
		return 0, ErrTieUnresolved
	}

	return winner, nil
}

func filter(cs []Candidate, keep func(Candidate) bool) []Candidate {
	out := make([]Candidate, 0, len(cs))
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
