// Package equalshares implements the Method of Equal Shares (min/max
// variant) for participatory budgeting: given a total budget, a set of
// projects each with an admissible [min_cost, max_cost] funding range, a
// voter list, and a per-project bid table, it computes a budget-feasible
// allocation and the per-voter payments that fund it.
//
// The algorithm proceeds in two layers:
//
//   - a fixed-budget round (package round) that, given an identical
//     starting budget for every voter, greedily funds the project with
//     the best effective cost-per-vote until nothing more is affordable;
//   - an outer escalation loop (Compute, in this package) that repeatedly
//     raises the per-voter budget and re-runs the fixed-budget round,
//     stopping once no further increase would change the outcome or
//     would exceed the total budget.
//
// Every monetary quantity in this module (core.Money) is an exact
// rational rather than a float or scaled integer, so repeated runs on
// identical input are bit-identical and splits like 1500/9 are exact
// rather than rounded.
package equalshares
