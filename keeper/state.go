package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pooltogether/wrapped-yield-source/types"
)

// GetShares returns the holder's share balance, zero when no entry exists.
func (k Keeper) GetShares(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error) {
	shares, err := k.Shares.Get(ctx, holder)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return shares, nil
}

// GetTotalShares returns the total share supply, zero before the first mint.
func (k Keeper) GetTotalShares(ctx context.Context) (sdkmath.Int, error) {
	total, err := k.TotalShares.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return total, nil
}

// GetPendingReserve returns the unharvested reserve, zero when none accrued.
func (k Keeper) GetPendingReserve(ctx context.Context) (sdkmath.Int, error) {
	pending, err := k.PendingReserve.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return pending, nil
}

// GetLastExchangeRate returns the last observed tokens-per-share rate. Zero
// is the never-observed sentinel.
func (k Keeper) GetLastExchangeRate(ctx context.Context) (sdkmath.LegacyDec, error) {
	rate, err := k.LastExchangeRate.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.LegacyZeroDec(), nil
		}
		return sdkmath.LegacyDec{}, err
	}
	return rate, nil
}

// GetReserveRate returns the configured reserve rate, zero when unset.
func (k Keeper) GetReserveRate(ctx context.Context) (sdkmath.LegacyDec, error) {
	rate, err := k.ReserveRate.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.LegacyZeroDec(), nil
		}
		return sdkmath.LegacyDec{}, err
	}
	return rate, nil
}

// GetDepositDenom returns the configured underlying asset denom.
func (k Keeper) GetDepositDenom(ctx context.Context) (string, error) {
	return k.DepositDenom.Get(ctx)
}

// mintShares credits shares to the holder and bumps the total supply. The
// aggregate is maintained incrementally here and in burnShares only, never
// recomputed by summation. A zero amount is a no-op.
func (k Keeper) mintShares(ctx context.Context, holder sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrInvalidRequest.Wrapf("cannot mint negative shares %s", amount)
	}
	if amount.IsZero() {
		return nil
	}

	balance, err := k.GetShares(ctx, holder)
	if err != nil {
		return err
	}
	if err := k.Shares.Set(ctx, holder, balance.Add(amount)); err != nil {
		return err
	}

	total, err := k.GetTotalShares(ctx)
	if err != nil {
		return err
	}
	return k.TotalShares.Set(ctx, total.Add(amount))
}

// burnShares debits shares from the holder and lowers the total supply. A
// fully redeemed holder's ledger entry is removed, not zeroed in place.
func (k Keeper) burnShares(ctx context.Context, holder sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrInvalidRequest.Wrapf("cannot burn negative shares %s", amount)
	}
	if amount.IsZero() {
		return nil
	}

	balance, err := k.GetShares(ctx, holder)
	if err != nil {
		return err
	}
	if balance.LT(amount) {
		return types.ErrInsufficientShares.Wrapf("holder %s has %s shares, needs %s", holder, balance, amount)
	}

	remaining := balance.Sub(amount)
	if remaining.IsZero() {
		if err := k.Shares.Remove(ctx, holder); err != nil {
			return err
		}
	} else {
		if err := k.Shares.Set(ctx, holder, remaining); err != nil {
			return err
		}
	}

	total, err := k.GetTotalShares(ctx)
	if err != nil {
		return err
	}
	return k.TotalShares.Set(ctx, total.Sub(amount))
}
