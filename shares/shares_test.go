package shares_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/equalshares/core"
	"github.com/katalvlaran/equalshares/shares"
)

func money(n int64) core.Money { return core.MoneyFromInt(n) }

func epsilon() core.Money { return core.MoneyFromInt(1) }

// S6: cascading fallback, and permutation invariance (spec §4.2.1, §8 S6).
func TestDistributeCascadingFallback(t *testing.T) {
	require := require.New(t)

	base := []shares.VoterBudget{
		{Voter: 1, Budget: money(11)}, // a
		{Voter: 2, Budget: money(25)}, // b
		{Voter: 3, Budget: money(55)}, // c
	}

	want := map[core.VoterID]int64{1: 11, 2: 25, 3: 30}

	perms := [][]shares.VoterBudget{
		base,
		{base[2], base[0], base[1]},
		{base[1], base[2], base[0]},
	}

	for _, pairs := range perms {
		contributions, err := shares.Distribute(money(66), pairs, epsilon())
		require.NoError(err)
		require.Len(contributions, 3)
		for _, c := range contributions {
			require.True(c.Amount.Cmp(money(want[c.Voter])) == 0, "voter %d: got %s want %d", c.Voter, c.Amount, want[c.Voter])
		}
	}
}

// S7: insufficient funds must fail with NotFullyFunded.
func TestDistributeInsufficientFunds(t *testing.T) {
	require := require.New(t)

	pairs := []shares.VoterBudget{
		{Voter: 1, Budget: money(11)},
		{Voter: 2, Budget: money(12)},
		{Voter: 3, Budget: money(13)},
	}

	_, err := shares.Distribute(money(66), pairs, epsilon())
	require.ErrorIs(err, shares.ErrNotFullyFunded)

	var nfe *shares.NotFullyFundedError
	require.ErrorAs(err, &nfe)
	require.True(nfe.Remaining.Cmp(money(30)) == 0)
}

func TestDistributeSumsToCost(t *testing.T) {
	require := require.New(t)

	pairs := []shares.VoterBudget{
		{Voter: 1, Budget: money(200)},
		{Voter: 2, Budget: money(300)},
		{Voter: 3, Budget: money(400)},
	}

	contributions, err := shares.Distribute(money(450), pairs, epsilon())
	require.NoError(err)

	sum := core.MoneyZero()
	for _, c := range contributions {
		require.True(c.Amount.Cmp(c.Amount.Max(core.MoneyZero())) == 0) // non-negative
		sum = sum.Add(c.Amount)
	}
	require.True(sum.Cmp(money(450)) == 0)
}

func TestDistributeZeroCost(t *testing.T) {
	require := require.New(t)

	pairs := []shares.VoterBudget{{Voter: 1, Budget: money(10)}}
	contributions, err := shares.Distribute(money(0), pairs, epsilon())
	require.NoError(err)
	require.True(contributions[0].Amount.IsZero())
}
