package round

import "github.com/katalvlaran/equalshares/core"

// Result is everything a fixed-budget round produces (spec §4.4.1):
// the final allocation per project, the cost at which each project would
// next be considered if Run were re-invoked with a larger per-voter
// budget, and the accumulated per-voter payments.
type Result struct {
	Allocation map[core.ProjectID]core.Money
	NextCost   map[core.ProjectID]core.NextCost
	Payments   core.Payments
}
