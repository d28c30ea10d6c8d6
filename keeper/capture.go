package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/pooltogether/wrapped-yield-source/types"
	"github.com/pooltogether/wrapped-yield-source/utils"
)

// CaptureReserve reconciles the exchange rate against the yield source and
// skims the reserve's cut of any accrual since the previous observation.
//
// This must run before any operation that changes share supply or quotes a
// conversion, so nothing is ever priced against a stale rate. The only
// failure mode is the accrued reserve no longer fitting its 128-bit width;
// rate decreases are recorded but never claw back previously accrued reserve.
func (k Keeper) CaptureReserve(ctx context.Context) error {
	totalShares, err := k.GetTotalShares(ctx)
	if err != nil {
		return err
	}

	// With no shares outstanding there is nothing to measure a rate against;
	// record the unobserved sentinel so the next supply bootstraps cleanly.
	currentRate := sdkmath.LegacyZeroDec()
	if totalShares.IsPositive() {
		balance, err := k.YieldSource.BalanceOf(ctx, k.wrapperAddr)
		if err != nil {
			return err
		}
		currentRate = sdkmath.LegacyNewDecFromInt(balance).QuoInt(totalShares)
	}

	lastRate, err := k.GetLastExchangeRate(ctx)
	if err != nil {
		return err
	}

	// First observation after bootstrap measures against itself, so it can
	// never itself generate reserve.
	previousRate := lastRate
	if lastRate.IsZero() {
		previousRate = currentRate
	}

	if currentRate.GT(previousRate) {
		delta := currentRate.Sub(previousRate)

		reserveRate, err := k.GetReserveRate(ctx)
		if err != nil {
			return err
		}

		reservePortion := delta.MulTruncate(reserveRate)
		accrued := reservePortion.MulInt(totalShares).TruncateInt()

		if accrued.IsPositive() {
			pending, err := k.GetPendingReserve(ctx)
			if err != nil {
				return err
			}
			pending = pending.Add(accrued)
			if !utils.FitsUint128(pending) {
				return types.ErrReserveOverflow.Wrapf("pending reserve %s", pending)
			}
			if err := k.PendingReserve.Set(ctx, pending); err != nil {
				return err
			}

			k.emitEvent(ctx, types.EventTypeReserveCapture, types.NewEventReserveCapture(lastRate, currentRate, accrued)...)
		}
	}

	return k.LastExchangeRate.Set(ctx, currentRate)
}
