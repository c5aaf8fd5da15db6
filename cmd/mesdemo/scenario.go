package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/equalshares/core"
)

// scenarioFile is the on-disk shape of a demo input: a voter list, a budget,
// and per-project cost ranges and bids. All monetary fields are whole-unit
// integers; toInputs converts them to core.Money once, after loading.
type scenarioFile struct {
	Budget   int64             `json:"budget"`
	Voters   []int64           `json:"voters"`
	Projects []scenarioProject `json:"projects"`
}

type scenarioProject struct {
	ID      int64            `json:"id"`
	MinCost int64            `json:"min_cost"`
	MaxCost int64            `json:"max_cost"`
	Bids    map[string]int64 `json:"bids"` // voter id (as string, JSON object key) -> bid amount
}

// loadScenario reads and decodes a scenario file from path.
func loadScenario(path string) (*scenarioFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var sf scenarioFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	return &sf, nil
}

// toInputs converts the decoded file into the types Compute expects.
func (sf *scenarioFile) toInputs() (
	voters []core.VoterID,
	ranges map[core.ProjectID]core.ProjectRange,
	bids map[core.ProjectID]map[core.VoterID]core.Money,
	budget core.Money,
) {
	voters = make([]core.VoterID, len(sf.Voters))
	for i, v := range sf.Voters {
		voters[i] = core.VoterID(v)
	}

	ranges = make(map[core.ProjectID]core.ProjectRange, len(sf.Projects))
	bids = make(map[core.ProjectID]map[core.VoterID]core.Money, len(sf.Projects))
	for _, p := range sf.Projects {
		pid := core.ProjectID(p.ID)
		ranges[pid] = core.ProjectRange{
			MinCost: core.MoneyFromInt(p.MinCost),
			MaxCost: core.MoneyFromInt(p.MaxCost),
		}
		inner := make(map[core.VoterID]core.Money, len(p.Bids))
		for voterKey, amount := range p.Bids {
			var voterID int64
			fmt.Sscanf(voterKey, "%d", &voterID)
			inner[core.VoterID(voterID)] = core.MoneyFromInt(amount)
		}
		bids[pid] = inner
	}

	budget = core.MoneyFromInt(sf.Budget)
	return voters, ranges, bids, budget
}
