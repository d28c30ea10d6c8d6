package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/pooltogether/wrapped-yield-source/keeper"
	"github.com/pooltogether/wrapped-yield-source/types"
)

func (s *TestSuite) TestQueryParams() {
	srv := keeper.NewQueryServer(s.k)

	resp, err := srv.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Assert().Equal(sdkmath.LegacyNewDecWithPrec(10, 2).String(), resp.ReserveRate.String())
	s.Assert().Equal(types.DefaultDepositDenom, resp.DepositDenom)

	_, err = srv.Params(s.ctx, nil)
	s.Require().ErrorIs(err, types.ErrInvalidRequest)
}

func (s *TestSuite) TestQueryShareBalances() {
	srv := keeper.NewQueryServer(s.k)
	s.fundAndSupply(1_000)

	balResp, err := srv.ShareBalance(s.ctx, &types.QueryShareBalanceRequest{Address: s.depositor.String()})
	s.Require().NoError(err)
	s.Assert().Equal("1000", balResp.Shares.String())

	emptyResp, err := srv.ShareBalance(s.ctx, &types.QueryShareBalanceRequest{Address: s.beneficiary.String()})
	s.Require().NoError(err)
	s.Assert().True(emptyResp.Shares.IsZero(), "non-holder reads as zero")

	_, err = srv.ShareBalance(s.ctx, &types.QueryShareBalanceRequest{Address: "not-an-address"})
	s.Require().ErrorIs(err, types.ErrInvalidRequest)

	totalResp, err := srv.TotalShares(s.ctx, &types.QueryTotalSharesRequest{})
	s.Require().NoError(err)
	s.Assert().Equal("1000", totalResp.TotalShares.String())
}

func (s *TestSuite) TestQueryReserveState() {
	srv := keeper.NewQueryServer(s.k)
	s.fundAndSupply(1_000)
	s.batch()
	s.Require().NoError(s.k.CaptureReserve(s.ctx))
	s.source.Accrue(s.wrapperAddr, sdkmath.NewInt(100))
	s.Require().NoError(s.k.CaptureReserve(s.ctx))

	pendingResp, err := srv.PendingReserve(s.ctx, &types.QueryPendingReserveRequest{})
	s.Require().NoError(err)
	s.Assert().Equal("10", pendingResp.PendingReserve.String())

	rateResp, err := srv.LastExchangeRate(s.ctx, &types.QueryLastExchangeRateRequest{})
	s.Require().NoError(err)
	s.Assert().Equal(sdkmath.LegacyNewDecWithPrec(11, 1).String(), rateResp.LastExchangeRate.String())
}
