package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/pooltogether/wrapped-yield-source/types"
	"github.com/pooltogether/wrapped-yield-source/utils"
)

// netSourceBalance returns the source-reported balance net of the pending
// reserve. The source is queried live on every call; pricing must never use
// a balance cached from before the capture that preceded it.
func (k Keeper) netSourceBalance(ctx context.Context) (sdkmath.Int, error) {
	balance, err := k.YieldSource.BalanceOf(ctx, k.wrapperAddr)
	if err != nil {
		return sdkmath.Int{}, err
	}

	pending, err := k.GetPendingReserve(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}

	net := balance.Sub(pending)
	if net.IsNegative() {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrapf(
			"pending reserve %s exceeds source balance %s", pending, balance)
	}
	return net, nil
}

// tokensToShares converts a token amount at the canonical share price. Must
// run after CaptureReserve within the same operation.
func (k Keeper) tokensToShares(ctx context.Context, tokens sdkmath.Int) (sdkmath.Int, error) {
	totalTokens, err := k.netSourceBalance(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	totalShares, err := k.GetTotalShares(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.CalculateSharesFromTokens(tokens, totalTokens, totalShares)
}

// sharesToTokens converts a share amount at the canonical share price. Must
// run after CaptureReserve within the same operation, and never with a zero
// share supply.
func (k Keeper) sharesToTokens(ctx context.Context, shares sdkmath.Int) (sdkmath.Int, error) {
	totalTokens, err := k.netSourceBalance(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	totalShares, err := k.GetTotalShares(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if totalShares.IsZero() {
		return sdkmath.Int{}, types.ErrZeroShareSupply
	}
	return utils.CalculateTokensFromShares(shares, totalShares, totalTokens)
}

// TokensToShares quotes how many shares a token amount is currently worth.
// Capture runs first so the quote is never stale.
func (k Keeper) TokensToShares(ctx context.Context, tokens sdkmath.Int) (sdkmath.Int, error) {
	if tokens.IsNil() || tokens.IsNegative() {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrapf("invalid token amount %s", tokens)
	}
	if err := k.CaptureReserve(ctx); err != nil {
		return sdkmath.Int{}, err
	}
	return k.tokensToShares(ctx, tokens)
}

// SharesToTokens quotes how many tokens a share amount is currently worth.
// Capture runs first so the quote is never stale.
func (k Keeper) SharesToTokens(ctx context.Context, shares sdkmath.Int) (sdkmath.Int, error) {
	if shares.IsNil() || shares.IsNegative() {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrapf("invalid share amount %s", shares)
	}
	if err := k.CaptureReserve(ctx); err != nil {
		return sdkmath.Int{}, err
	}
	return k.sharesToTokens(ctx, shares)
}
