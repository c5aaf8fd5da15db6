package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/equalshares/core"
)

type BidGraphSuite struct {
	suite.Suite
	g *core.BidGraph
}

func (s *BidGraphSuite) SetupTest() {
	g, err := core.NewBidGraph([]core.VoterID{1, 2, 3})
	s.Require().NoError(err)
	s.g = g
}

func (s *BidGraphSuite) TestRegistersVotersAndRejectsDuplicates() {
	s.Equal([]core.VoterID{1, 2, 3}, s.g.Voters())
	s.True(s.g.HasVoter(2))
	s.False(s.g.HasVoter(4))

	_, err := core.NewBidGraph([]core.VoterID{1, 1})
	s.ErrorIs(err, core.ErrDuplicateVoter)
}

func (s *BidGraphSuite) TestAddProjectRetainsEmptySupporterSet() {
	s.g.AddProject(11)
	s.Empty(s.g.Supporters(11))
	s.Equal(0, s.g.SupporterCount(11))
	s.True(s.g.HasProject(11))
}

func (s *BidGraphSuite) TestPutBidRejectsUnknownProjectOrVoter() {
	s.g.AddProject(11)

	err := s.g.PutBid(99, 1, core.MoneyFromInt(10))
	s.ErrorIs(err, core.ErrUnknownProject)

	err = s.g.PutBid(11, 99, core.MoneyFromInt(10))
	s.ErrorIs(err, core.ErrUnknownVoter)

	err = s.g.PutBid(11, 1, core.MoneyFromInt(-1))
	s.ErrorIs(err, core.ErrNegativeAmount)
}

func (s *BidGraphSuite) TestPutBidAndSupportersAreSorted() {
	s.g.AddProject(11)
	require.NoError(s.T(), s.g.PutBid(11, 3, core.MoneyFromInt(50)))
	require.NoError(s.T(), s.g.PutBid(11, 1, core.MoneyFromInt(70)))

	s.Equal([]core.VoterID{1, 3}, s.g.Supporters(11))

	amt, ok := s.g.Bid(11, 1)
	s.True(ok)
	s.True(amt.Cmp(core.MoneyFromInt(70)) == 0)

	_, ok = s.g.Bid(11, 2)
	s.False(ok)
}

func (s *BidGraphSuite) TestCloneIsIndependent() {
	s.g.AddProject(11)
	require.NoError(s.T(), s.g.PutBid(11, 1, core.MoneyFromInt(50)))

	clone := s.g.Clone()
	clone.SetBid(11, 1, core.MoneyFromInt(999))

	orig, _ := s.g.Bid(11, 1)
	cloned, _ := clone.Bid(11, 1)
	s.True(orig.Cmp(core.MoneyFromInt(50)) == 0)
	s.True(cloned.Cmp(core.MoneyFromInt(999)) == 0)
}

func (s *BidGraphSuite) TestRemoveBid() {
	s.g.AddProject(11)
	require.NoError(s.T(), s.g.PutBid(11, 1, core.MoneyFromInt(50)))
	s.g.RemoveBid(11, 1)
	_, ok := s.g.Bid(11, 1)
	s.False(ok)
}

func TestBidGraphSuite(t *testing.T) {
	suite.Run(t, new(BidGraphSuite))
}
