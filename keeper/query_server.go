package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pooltogether/wrapped-yield-source/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Params returns the wrapper's static configuration.
func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("empty request")
	}

	rate, err := q.GetReserveRate(ctx)
	if err != nil {
		return nil, err
	}
	denom, err := q.GetDepositDenom(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{ReserveRate: rate, DepositDenom: denom}, nil
}

// PendingReserve returns the unharvested reserve in token units.
func (q queryServer) PendingReserve(ctx context.Context, req *types.QueryPendingReserveRequest) (*types.QueryPendingReserveResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("empty request")
	}

	pending, err := q.GetPendingReserve(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPendingReserveResponse{PendingReserve: pending}, nil
}

// LastExchangeRate returns the tokens-per-share rate recorded by the most
// recent capture. This is the stored observation, not a live quote; use the
// keeper's conversion surface for current pricing.
func (q queryServer) LastExchangeRate(ctx context.Context, req *types.QueryLastExchangeRateRequest) (*types.QueryLastExchangeRateResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("empty request")
	}

	rate, err := q.GetLastExchangeRate(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryLastExchangeRateResponse{LastExchangeRate: rate}, nil
}

// ShareBalance returns a holder's balance in share units.
func (q queryServer) ShareBalance(ctx context.Context, req *types.QueryShareBalanceRequest) (*types.QueryShareBalanceResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("empty request")
	}

	holder, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidRequest.Wrapf("invalid address %q: %s", req.Address, err)
	}

	shares, err := q.GetShares(ctx, holder)
	if err != nil {
		return nil, err
	}
	return &types.QueryShareBalanceResponse{Shares: shares}, nil
}

// TotalShares returns the total share supply.
func (q queryServer) TotalShares(ctx context.Context, req *types.QueryTotalSharesRequest) (*types.QueryTotalSharesResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("empty request")
	}

	total, err := q.GetTotalShares(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryTotalSharesResponse{TotalShares: total}, nil
}
