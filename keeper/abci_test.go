package keeper_test

func (s *TestSuite) TestBeginBlockerBatchesIdleDeposits() {
	s.fundAndSupply(750)
	s.assertBankBalance(s.wrapperAddr, 750)

	s.Require().NoError(s.k.BeginBlocker(s.ctx))

	s.assertBankBalance(s.wrapperAddr, 0)
	held, err := s.source.BalanceOf(s.ctx, s.wrapperAddr)
	s.Require().NoError(err)
	s.Assert().Equal("750", held.String())

	// Nothing idle on the next block; no further deposit calls are made.
	s.Require().NoError(s.k.BeginBlocker(s.ctx))
	s.Assert().Len(s.source.DepositCalls, 1)
}
