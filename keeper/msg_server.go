package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pooltogether/wrapped-yield-source/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// SupplyToken deposits underlying tokens from the supplier, minting shares
// to the beneficiary.
func (k msgServer) SupplyToken(ctx context.Context, msg *types.MsgSupplyTokenRequest) (*types.MsgSupplyTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}

	supplier := sdk.MustAccAddressFromBech32(msg.Supplier)
	beneficiary := sdk.MustAccAddressFromBech32(msg.Beneficiary)

	shares, err := k.SupplyTokenTo(ctx, supplier, beneficiary, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgSupplyTokenResponse{SharesMinted: shares}, nil
}

// RedeemToken burns the signer's shares for the requested amount of
// underlying tokens, returning the amount actually paid.
func (k msgServer) RedeemToken(ctx context.Context, msg *types.MsgRedeemTokenRequest) (*types.MsgRedeemTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}

	owner := sdk.MustAccAddressFromBech32(msg.Owner)

	redeemed, err := k.Keeper.RedeemToken(ctx, owner, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgRedeemTokenResponse{Redeemed: redeemed}, nil
}

// MintReserve harvests the pending reserve. Only the authority may call it.
func (k msgServer) MintReserve(ctx context.Context, msg *types.MsgMintReserveRequest) (*types.MsgMintReserveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}

	signer := sdk.MustAccAddressFromBech32(msg.Authority)

	shares, err := k.Keeper.MintReserve(ctx, signer)
	if err != nil {
		return nil, err
	}
	return &types.MsgMintReserveResponse{SharesMinted: shares}, nil
}

// Batch forwards the wrapper's idle balance to the yield source. Anyone may
// call it.
func (k msgServer) Batch(ctx context.Context, msg *types.MsgBatchRequest) (*types.MsgBatchResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}

	deposited, err := k.Keeper.Batch(ctx)
	if err != nil {
		return nil, err
	}
	return &types.MsgBatchResponse{Deposited: deposited}, nil
}
