package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pooltogether/wrapped-yield-source/types"
)

func (s *TestSuite) TestDepositToken() {
	denom, err := s.k.DepositToken(s.ctx)
	s.Require().NoError(err, "DepositToken")
	s.Assert().Equal(types.DefaultDepositDenom, denom)
}

func (s *TestSuite) TestSupplyTokenToBootstrap() {
	// Scenario A: 1000 tokens into an empty wrapper mints 1000 shares.
	shares := s.fundAndSupply(1_000)

	s.Assert().Equal("1000", shares.String(), "bootstrap deposit mints 1:1")
	s.Assert().Equal("1000", s.totalShares().String(), "share supply equals the deposit")
	s.Assert().Equal("1000", s.shares(s.depositor).String(), "depositor owns all shares")
	s.assertBankBalance(s.wrapperAddr, 1_000)
	s.assertBankBalance(s.depositor, 0)
}

func (s *TestSuite) TestSupplyTokenToBeneficiary() {
	s.bank.FundAccount(s.depositor, sdk.NewCoins(s.coin(500)))

	shares, err := s.k.SupplyTokenTo(s.ctx, s.depositor, s.beneficiary, s.coin(500))
	s.Require().NoError(err, "SupplyTokenTo with distinct beneficiary")

	s.Assert().Equal("500", shares.String())
	s.Assert().Equal("500", s.shares(s.beneficiary).String(), "shares go to the beneficiary")
	s.Assert().True(s.shares(s.depositor).IsZero(), "the supplier keeps no shares")
	s.assertBankBalance(s.depositor, 0)
}

func (s *TestSuite) TestSupplyTokenToAfterAccrual() {
	// Scenario C: 109 tokens at a 1090-token, 1000-share pool mints 100 shares.
	s.fundAndSupply(1_000)
	s.batch()
	s.Require().NoError(s.k.CaptureReserve(s.ctx))
	s.source.Accrue(s.wrapperAddr, sdkmath.NewInt(100))

	shares := s.fundAndSupply(109)

	s.Assert().Equal("100", shares.String(), "floor(109 * 1000 / 1090)")
	s.Assert().Equal("1100", s.totalShares().String())
	s.Assert().Equal("10", s.pendingReserve().String(), "capture ran before pricing")
}

func (s *TestSuite) TestSupplyTokenRejections() {
	s.bank.FundAccount(s.depositor, sdk.NewCoins(s.coin(10)))

	_, err := s.k.SupplyTokenTo(s.ctx, s.depositor, s.depositor, sdk.NewInt64Coin("uother", 10))
	s.Require().Error(err, "wrong denom")
	s.Assert().ErrorIs(err, types.ErrDenomMismatch)

	_, err = s.k.SupplyTokenTo(s.ctx, s.depositor, s.depositor, s.coin(0))
	s.Require().Error(err, "zero amount")
	s.Assert().ErrorIs(err, types.ErrInvalidRequest)

	_, err = s.k.SupplyTokenTo(s.ctx, s.depositor, s.depositor, s.coin(100))
	s.Require().Error(err, "supplier cannot cover the pull")
}

func (s *TestSuite) TestBalanceOfToken() {
	s.fundAndSupply(1_000)
	s.batch()
	s.Require().NoError(s.k.CaptureReserve(s.ctx))
	s.source.Accrue(s.wrapperAddr, sdkmath.NewInt(100))

	balance, err := s.k.BalanceOfToken(s.ctx, s.depositor)
	s.Require().NoError(err, "BalanceOfToken")
	s.Assert().Equal("1090", balance.String(), "all shares are worth the pool net of reserve")

	other, err := s.k.BalanceOfToken(s.ctx, s.beneficiary)
	s.Require().NoError(err, "BalanceOfToken for a holder with no shares")
	s.Assert().True(other.IsZero())
}

func (s *TestSuite) TestRedeemTokenFromIdleBalance() {
	s.fundAndSupply(1_000)

	paid, err := s.k.RedeemToken(s.ctx, s.depositor, s.coin(400))
	s.Require().NoError(err, "RedeemToken fully covered by idle balance")

	s.Assert().Equal("400", paid.Amount.String())
	s.Assert().Equal("600", s.shares(s.depositor).String())
	s.Assert().Equal("600", s.totalShares().String())
	s.assertBankBalance(s.depositor, 400)
	s.Assert().Empty(s.source.WithdrawCalls, "no source withdrawal when idle funds suffice")
}

func (s *TestSuite) TestRedeemTokenIlliquidShortfall() {
	// Scenario D: 50 idle, request 200, source returns only 100 of the
	// 150-token shortfall; the caller receives 150.
	s.fundAndSupply(1_000)
	s.batch()
	// Idle tokens sitting in the wrapper without a matching supply, so the
	// share price stays at 1:1 for the redemption.
	s.bank.FundAccount(s.wrapperAddr, sdk.NewCoins(s.coin(50)))

	s.source.SetLiquid(sdkmath.NewInt(100))
	sharesBefore := s.shares(s.depositor)

	paid, err := s.k.RedeemToken(s.ctx, s.depositor, s.coin(200))
	s.Require().NoError(err, "an illiquid shortfall is degraded success, not an error")

	s.Assert().Equal("150", paid.Amount.String(), "200 - (150 - 100)")
	s.assertBankBalance(s.depositor, 150)
	s.Require().Len(s.source.WithdrawCalls, 1, "exactly the shortfall is requested")
	s.Assert().Equal("150", s.source.WithdrawCalls[0].Amount.String())
	s.Assert().Equal("200", sharesBefore.Sub(s.shares(s.depositor)).String(),
		"shares burned for the full requested amount")
}

func (s *TestSuite) TestRedeemTokenRejections() {
	s.fundAndSupply(1_000)

	_, err := s.k.RedeemToken(s.ctx, s.depositor, sdk.NewInt64Coin("uother", 10))
	s.Require().Error(err, "wrong denom")
	s.Assert().ErrorIs(err, types.ErrDenomMismatch)

	_, err = s.k.RedeemToken(s.ctx, s.beneficiary, s.coin(100))
	s.Require().Error(err, "owner without shares")
	s.Assert().ErrorIs(err, types.ErrInsufficientShares)

	_, err = s.k.RedeemToken(s.ctx, s.depositor, s.coin(2_000))
	s.Require().Error(err, "request beyond the owner's claim")
	s.Assert().ErrorIs(err, types.ErrInsufficientShares)
	s.Assert().Equal("1000", s.totalShares().String(), "failed redemption must not burn")
}

func (s *TestSuite) TestMintReserve() {
	// Scenario E: harvesting from state B mints floor(10 * 1000 / 1090) = 9
	// shares and clears the accumulator.
	s.fundAndSupply(1_000)
	s.batch()
	s.Require().NoError(s.k.CaptureReserve(s.ctx))
	s.source.Accrue(s.wrapperAddr, sdkmath.NewInt(100))
	s.Require().NoError(s.k.CaptureReserve(s.ctx))

	shares, err := s.k.MintReserve(s.ctx, s.authority)
	s.Require().NoError(err, "MintReserve by the authority")

	s.Assert().Equal("9", shares.String())
	s.Assert().Equal("9", s.shares(s.authority).String())
	s.Assert().Equal("1009", s.totalShares().String())
	s.Assert().True(s.pendingReserve().IsZero(), "harvest clears the accumulator")
}

func (s *TestSuite) TestMintReserveUnauthorized() {
	_, err := s.k.MintReserve(s.ctx, s.depositor)
	s.Require().Error(err, "non-authority caller")
	s.Assert().ErrorIs(err, types.ErrUnauthorized)
}

func (s *TestSuite) TestMintReserveNothingPending() {
	s.fundAndSupply(1_000)

	shares, err := s.k.MintReserve(s.ctx, s.authority)
	s.Require().NoError(err, "harvest with nothing pending is a no-op")
	s.Assert().True(shares.IsZero())
	s.Assert().True(s.shares(s.authority).IsZero())
}

func (s *TestSuite) TestBatch() {
	s.fundAndSupply(1_000)
	s.assertBankBalance(s.wrapperAddr, 1_000)

	deposited, err := s.k.Batch(s.ctx)
	s.Require().NoError(err, "Batch")
	s.Assert().Equal("1000", deposited.Amount.String())
	s.assertBankBalance(s.wrapperAddr, 0)

	reported, err := s.source.BalanceOf(s.ctx, s.wrapperAddr)
	s.Require().NoError(err)
	s.Assert().Equal("1000", reported.String(), "source credits the wrapper")

	// Repeat with nothing idle: a no-op.
	deposited, err = s.k.Batch(s.ctx)
	s.Require().NoError(err, "Batch with zero idle balance")
	s.Assert().True(deposited.IsZero())
	s.Require().Len(s.source.DepositCalls, 1, "no deposit call for an empty batch")
}

func (s *TestSuite) TestReserveNeverExceedsSourceBalance() {
	s.fundAndSupply(1_000)
	s.batch()
	s.Require().NoError(s.k.CaptureReserve(s.ctx))

	for _, accrual := range []int64{100, 37, 1, 250} {
		s.source.Accrue(s.wrapperAddr, sdkmath.NewInt(accrual))
		s.Require().NoError(s.k.CaptureReserve(s.ctx))

		reported, err := s.source.BalanceOf(s.ctx, s.wrapperAddr)
		s.Require().NoError(err)
		s.Assert().True(s.pendingReserve().LTE(reported),
			"pending reserve %s exceeds reported balance %s", s.pendingReserve(), reported)
	}
}
