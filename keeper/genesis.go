package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pooltogether/wrapped-yield-source/types"
)

// InitGenesis initializes the wrapper state from genesis. The total share
// supply is derived by summing the imported ledger; this is the only place
// the aggregate is ever recomputed.
func (k Keeper) InitGenesis(ctx context.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid %s genesis state: %w", types.ModuleName, err))
	}

	if err := k.ReserveRate.Set(ctx, genState.ReserveRate); err != nil {
		panic(err)
	}
	if err := k.DepositDenom.Set(ctx, genState.DepositDenom); err != nil {
		panic(err)
	}
	if err := k.PendingReserve.Set(ctx, genState.PendingReserve); err != nil {
		panic(err)
	}
	if err := k.LastExchangeRate.Set(ctx, genState.LastExchangeRate); err != nil {
		panic(err)
	}

	total := sdkmath.ZeroInt()
	for i := range genState.Shares {
		entry := genState.Shares[i]
		holder := sdk.MustAccAddressFromBech32(entry.Address)
		if err := k.Shares.Set(ctx, holder, entry.Amount); err != nil {
			panic(fmt.Errorf("failed to store share balance for %s: %w", entry.Address, err))
		}
		total = total.Add(entry.Amount)
	}
	if err := k.TotalShares.Set(ctx, total); err != nil {
		panic(err)
	}
}

// ExportGenesis exports the current wrapper state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	rate, err := k.GetReserveRate(ctx)
	if err != nil {
		panic(err)
	}
	denom, err := k.GetDepositDenom(ctx)
	if err != nil {
		panic(err)
	}
	pending, err := k.GetPendingReserve(ctx)
	if err != nil {
		panic(err)
	}
	lastRate, err := k.GetLastExchangeRate(ctx)
	if err != nil {
		panic(err)
	}

	genState := types.NewGenesisState(rate, denom)
	genState.PendingReserve = pending
	genState.LastExchangeRate = lastRate

	err = k.Shares.Walk(ctx, nil, func(holder sdk.AccAddress, amount sdkmath.Int) (bool, error) {
		genState.Shares = append(genState.Shares, types.ShareBalance{
			Address: holder.String(),
			Amount:  amount,
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return genState
}
