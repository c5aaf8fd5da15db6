package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/equalshares/core"
)

func TestNewProjectStateDiscreteCandidate(t *testing.T) {
	require := require.New(t)

	state := core.NewProjectState(11, core.MoneyFromInt(100), 3)

	require.Equal(core.PhaseDiscrete, state.Phase)
	require.True(state.CurrentCost.Cmp(core.MoneyFromInt(100)) == 0)
	require.True(state.Allocation.Cmp(core.MoneyZero()) == 0)
	require.True(state.EffectiveVoteCount.Cmp(core.MoneyFromInt(3)) == 0)
}

func TestNewProjectStateRetiredWhenNoSupporters(t *testing.T) {
	require := require.New(t)

	state := core.NewProjectState(12, core.MoneyFromInt(100), 0)

	require.Equal(core.PhaseRetired, state.Phase)
	require.True(state.EffectiveVoteCount.Cmp(core.MoneyZero()) == 0)
}

func TestNewProjectStateRetiredWhenNoMinCost(t *testing.T) {
	require := require.New(t)

	state := core.NewProjectState(13, core.MoneyZero(), 5)

	require.Equal(core.PhaseRetired, state.Phase)
	require.True(state.EffectiveVoteCount.Cmp(core.MoneyZero()) == 0)
}
