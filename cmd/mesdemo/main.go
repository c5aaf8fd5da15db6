// Command mesdemo runs the Method of Equal Shares over a scenario file and
// prints the resulting allocation and per-voter payments.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/decred/slog"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	equalshares "github.com/katalvlaran/equalshares"
	"github.com/katalvlaran/equalshares/core"
	"github.com/katalvlaran/equalshares/round"
)

type cliOptions struct {
	ScenarioPath string `short:"s" long:"scenario" description:"path to a scenario JSON file" required:"true"`
	Verbose      bool   `short:"v" long:"verbose" description:"log every selection step of every round"`
}

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		os.Exit(1) // flags already printed usage/the error
	}

	runID := uuid.New().String()

	backend := slog.NewBackend(os.Stderr)
	logger := backend.Logger("MESDEMO")
	if opts.Verbose {
		logger.SetLevel(slog.LevelDebug)
	} else {
		logger.SetLevel(slog.LevelInfo)
	}
	logger.Infof("run %s: loading scenario %s", runID, opts.ScenarioPath)

	sf, err := loadScenario(opts.ScenarioPath)
	if err != nil {
		logger.Errorf("run %s: %v", runID, err)
		os.Exit(1)
	}
	voters, ranges, bids, budget := sf.toInputs()

	var tracker round.Tracker
	if opts.Verbose {
		tracker = &loggingTracker{runID: runID, logger: logger}
	}

	result, err := equalshares.Compute(voters, ranges, bids, budget, equalshares.Options{
		Tracker: tracker,
		Logger:  logger,
	})
	if err != nil {
		logger.Errorf("run %s: compute failed: %v", runID, err)
		os.Exit(1)
	}

	printResult(result, ranges)
}

// loggingTracker adapts round.Tracker to the logger for verbose runs,
// generalizing the visitor-hook pattern the graph traversal packages use
// (OnVisit/OnEnqueue) to this engine's one extension point.
type loggingTracker struct {
	runID  string
	logger slog.Logger
}

func (t *loggingTracker) OnSelect(obs round.Observation) {
	t.logger.Debugf("run %s: selected project %d, increment %s", t.runID, obs.Project, obs.Increment)
}

func printResult(result equalshares.Result, ranges map[core.ProjectID]core.ProjectRange) {
	projects := make([]core.ProjectID, 0, len(ranges))
	for p := range ranges {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i] < projects[j] })

	fmt.Println("allocation:")
	for _, p := range projects {
		amount := result.Allocation[p]
		if amount.IsZero() {
			continue
		}
		fmt.Printf("  project %d: %s\n", p, amount.RatString())
	}

	fmt.Println("payments:")
	for _, p := range projects {
		byVoter := result.Payments[p]
		if len(byVoter) == 0 {
			continue
		}
		voters := make([]core.VoterID, 0, len(byVoter))
		for v := range byVoter {
			voters = append(voters, v)
		}
		sort.Slice(voters, func(i, j int) bool { return voters[i] < voters[j] })
		for _, v := range voters {
			amount := byVoter[v]
			if amount.IsZero() {
				continue
			}
			fmt.Printf("  project %d, voter %d: %s\n", p, v, amount.RatString())
		}
	}
}
