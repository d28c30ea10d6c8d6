package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pooltogether/wrapped-yield-source/types"
)

// DepositToken reports the denom of the asset the yield source accepts.
func (k Keeper) DepositToken(ctx context.Context) (string, error) {
	return k.YieldSource.DepositDenom(ctx)
}

// BalanceOfToken returns the holder's claim in token units at the current
// share price. Capture runs first, so the returned figure reflects any yield
// accrued up to this call.
func (k Keeper) BalanceOfToken(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error) {
	if err := k.CaptureReserve(ctx); err != nil {
		return sdkmath.Int{}, err
	}

	shares, err := k.GetShares(ctx, holder)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if shares.IsZero() {
		return sdkmath.ZeroInt(), nil
	}

	return k.sharesToTokens(ctx, shares)
}

// SupplyTokenTo deposits amount of the underlying asset from the supplier,
// minting shares to the beneficiary.
//
// Shares are priced and minted before the asset pull, so the price used is
// the one before the incoming deposit inflates the pool. The bank transfer is
// the single external call and the last side effect of the operation.
func (k Keeper) SupplyTokenTo(ctx context.Context, supplier, beneficiary sdk.AccAddress, amount sdk.Coin) (sdkmath.Int, error) {
	denom, err := k.GetDepositDenom(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if amount.Denom != denom {
		return sdkmath.Int{}, types.ErrDenomMismatch.Wrapf("got %s, wrapper accepts %s", amount.Denom, denom)
	}
	if !amount.IsPositive() {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrapf("supply amount must be positive, got %s", amount)
	}

	if err := k.CaptureReserve(ctx); err != nil {
		return sdkmath.Int{}, err
	}

	shares, err := k.tokensToShares(ctx, amount.Amount)
	if err != nil {
		return sdkmath.Int{}, err
	}

	if err := k.mintShares(ctx, beneficiary, shares); err != nil {
		return sdkmath.Int{}, err
	}

	if err := k.BankKeeper.SendCoins(ctx, supplier, k.wrapperAddr, sdk.NewCoins(amount)); err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to pull deposit: %w", err)
	}

	k.emitEvent(ctx, types.EventTypeSupply, types.NewEventSupply(supplier.String(), beneficiary.String(), amount, shares)...)
	return shares, nil
}

// RedeemToken redeems the requested token amount against the owner's shares
// and returns the amount actually paid.
//
// The share burn commits before any external transfer. When the wrapper's
// idle balance cannot cover the request, exactly the shortfall is requested
// from the source; if the source returns less, the owner absorbs the
// difference on this call. A smaller-than-requested payout is a normal
// return, not an error.
func (k Keeper) RedeemToken(ctx context.Context, owner sdk.AccAddress, amount sdk.Coin) (sdk.Coin, error) {
	denom, err := k.GetDepositDenom(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	if amount.Denom != denom {
		return sdk.Coin{}, types.ErrDenomMismatch.Wrapf("got %s, wrapper accepts %s", amount.Denom, denom)
	}
	if !amount.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrapf("redeem amount must be positive, got %s", amount)
	}

	if err := k.CaptureReserve(ctx); err != nil {
		return sdk.Coin{}, err
	}

	shares, err := k.tokensToShares(ctx, amount.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}
	if shares.IsZero() {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrapf("redeem amount %s is too small and costs zero shares", amount)
	}

	if err := k.burnShares(ctx, owner, shares); err != nil {
		return sdk.Coin{}, err
	}

	paid := amount.Amount
	idle := k.BankKeeper.GetBalance(ctx, k.wrapperAddr, denom).Amount
	if idle.LT(amount.Amount) {
		shortfall := amount.Amount.Sub(idle)
		returned, err := k.YieldSource.Withdraw(ctx, sdk.NewCoin(denom, shortfall))
		if err != nil {
			return sdk.Coin{}, fmt.Errorf("failed to withdraw from yield source: %w", err)
		}
		// The source may be illiquid; the owner takes the hit on this call.
		paid = amount.Amount.Sub(shortfall.Sub(returned))
	}

	paidCoin := sdk.NewCoin(denom, paid)
	if paid.IsPositive() {
		if err := k.BankKeeper.SendCoins(ctx, k.wrapperAddr, owner, sdk.NewCoins(paidCoin)); err != nil {
			return sdk.Coin{}, fmt.Errorf("failed to pay redemption: %w", err)
		}
	}

	k.emitEvent(ctx, types.EventTypeRedeem, types.NewEventRedeem(owner.String(), amount, paidCoin, shares)...)
	return paidCoin, nil
}

// MintReserve harvests the full pending reserve into shares minted to the
// authority and zeroes the accumulator. Calling with nothing pending is a
// successful no-op.
func (k Keeper) MintReserve(ctx context.Context, signer sdk.AccAddress) (sdkmath.Int, error) {
	if !signer.Equals(k.authority) {
		return sdkmath.Int{}, types.ErrUnauthorized.Wrapf("%s is not the authority", signer)
	}

	if err := k.CaptureReserve(ctx); err != nil {
		return sdkmath.Int{}, err
	}

	pending, err := k.GetPendingReserve(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if pending.IsZero() {
		return sdkmath.ZeroInt(), nil
	}

	// Priced while the pending reserve is still carved out of the pool, so
	// the harvest itself cannot move the share price.
	shares, err := k.tokensToShares(ctx, pending)
	if err != nil {
		return sdkmath.Int{}, err
	}

	if err := k.mintShares(ctx, k.authority, shares); err != nil {
		return sdkmath.Int{}, err
	}

	if err := k.PendingReserve.Set(ctx, sdkmath.ZeroInt()); err != nil {
		return sdkmath.Int{}, err
	}

	denom, err := k.GetDepositDenom(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	k.emitEvent(ctx, types.EventTypeReserveMinted, types.NewEventReserveMinted(k.authority.String(), sdk.NewCoin(denom, pending), shares)...)
	return shares, nil
}

// Batch forwards the wrapper's entire idle balance to the yield source in a
// single deposit, crediting the wrapper itself. Performs no share
// accounting; with nothing idle it does nothing and reports a zero coin.
func (k Keeper) Batch(ctx context.Context) (sdk.Coin, error) {
	denom, err := k.GetDepositDenom(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}

	idle := k.BankKeeper.GetBalance(ctx, k.wrapperAddr, denom)
	if idle.IsZero() {
		return idle, nil
	}

	if err := k.YieldSource.Deposit(ctx, idle, k.wrapperAddr); err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to forward batch to yield source: %w", err)
	}

	k.emitEvent(ctx, types.EventTypeBatch, types.NewEventBatch(idle)...)
	return idle, nil
}
