package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/equalshares/core"
)

func TestMoneyExactDivision(t *testing.T) {
	require := require.New(t)

	// 1500 split three ways must be exactly 500, not a rounded approximation.
	total := core.MoneyFromInt(1500)
	third := total.DivInt(3)
	require.True(third.MulInt(3).Cmp(total) == 0)

	// 500 split three ways is exactly 166.666..., not representable by any
	// finite decimal - this is the reason Money wraps big.Rat rather than
	// a scaled integer or float64.
	five := core.MoneyFromInt(500)
	share := five.DivInt(3)
	require.Equal("166.666667", share.String())
	require.Equal("500/3", share.RatString())
}

func TestMoneyOrdering(t *testing.T) {
	require := require.New(t)

	a := core.MoneyFromInt(10)
	b := core.MoneyFromInt(20)

	require.True(a.Cmp(b) < 0)
	require.True(b.Cmp(a) > 0)
	require.True(a.Cmp(a) == 0)
	require.Equal(a, a.Min(b))
	require.Equal(b, a.Max(b))
}

func TestMoneySignPredicates(t *testing.T) {
	require := require.New(t)

	require.True(core.MoneyZero().IsZero())
	require.False(core.MoneyFromInt(1).IsZero())
	require.True(core.MoneyFromInt(-1).IsNegative())
	require.True(core.MoneyFromInt(1).IsPositive())
	require.False(core.MoneyFromInt(0).IsPositive())
}
