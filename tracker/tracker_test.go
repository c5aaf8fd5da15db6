package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/equalshares/core"
	"github.com/katalvlaran/equalshares/round"
	"github.com/katalvlaran/equalshares/tracker"
)

func TestNoopDiscardsObservations(t *testing.T) {
	var tr tracker.Noop
	tr.OnSelect(round.Observation{Project: 1})
	// Nothing to assert beyond "does not panic" — Noop has no state.
}

func TestRecordingAccumulatesInOrder(t *testing.T) {
	require := require.New(t)

	rec := tracker.NewRecording()
	rec.OnSelect(round.Observation{Project: 1, Increment: core.MoneyFromInt(10)})
	rec.OnSelect(round.Observation{Project: 2, Increment: core.MoneyFromInt(20)})

	require.Len(rec.Observations, 2)
	require.Equal(core.ProjectID(1), rec.Observations[0].Project)
	require.Equal(core.ProjectID(2), rec.Observations[1].Project)
}
