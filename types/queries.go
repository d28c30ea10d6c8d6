package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// QueryServer is the read-only surface of the wrapper. Conversions and
// token-denominated balances are deliberately absent here: those quotes
// trigger reserve capture and therefore live on the keeper's mutating
// surface.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	PendingReserve(ctx context.Context, req *QueryPendingReserveRequest) (*QueryPendingReserveResponse, error)
	LastExchangeRate(ctx context.Context, req *QueryLastExchangeRateRequest) (*QueryLastExchangeRateResponse, error)
	ShareBalance(ctx context.Context, req *QueryShareBalanceRequest) (*QueryShareBalanceResponse, error)
	TotalShares(ctx context.Context, req *QueryTotalSharesRequest) (*QueryTotalSharesResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	ReserveRate  sdkmath.LegacyDec `json:"reserve_rate"`
	DepositDenom string            `json:"deposit_denom"`
}

type QueryPendingReserveRequest struct{}

type QueryPendingReserveResponse struct {
	PendingReserve sdkmath.Int `json:"pending_reserve"`
}

type QueryLastExchangeRateRequest struct{}

type QueryLastExchangeRateResponse struct {
	LastExchangeRate sdkmath.LegacyDec `json:"last_exchange_rate"`
}

type QueryShareBalanceRequest struct {
	Address string `json:"address"`
}

type QueryShareBalanceResponse struct {
	Shares sdkmath.Int `json:"shares"`
}

type QueryTotalSharesRequest struct{}

type QueryTotalSharesResponse struct {
	TotalShares sdkmath.Int `json:"total_shares"`
}
