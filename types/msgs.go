package types

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the transaction surface of the wrapper.
type MsgServer interface {
	// SupplyToken deposits underlying tokens, minting shares to a beneficiary.
	SupplyToken(ctx context.Context, msg *MsgSupplyTokenRequest) (*MsgSupplyTokenResponse, error)
	// RedeemToken burns the signer's shares in exchange for underlying tokens.
	RedeemToken(ctx context.Context, msg *MsgRedeemTokenRequest) (*MsgRedeemTokenResponse, error)
	// MintReserve harvests the pending reserve into shares for the authority.
	MintReserve(ctx context.Context, msg *MsgMintReserveRequest) (*MsgMintReserveResponse, error)
	// Batch forwards the wrapper's idle balance to the yield source.
	Batch(ctx context.Context, msg *MsgBatchRequest) (*MsgBatchResponse, error)
}

// MsgSupplyTokenRequest supplies tokens from the signer, crediting shares to
// the beneficiary (which need not be the signer).
type MsgSupplyTokenRequest struct {
	Supplier    string   `json:"supplier"`
	Beneficiary string   `json:"beneficiary"`
	Amount      sdk.Coin `json:"amount"`
}

// MsgSupplyTokenResponse reports the shares minted.
type MsgSupplyTokenResponse struct {
	SharesMinted sdkmath.Int `json:"shares_minted"`
}

// MsgRedeemTokenRequest redeems the requested token amount against the
// signer's shares.
type MsgRedeemTokenRequest struct {
	Owner  string   `json:"owner"`
	Amount sdk.Coin `json:"amount"`
}

// MsgRedeemTokenResponse reports the amount actually paid, which may be less
// than requested when the source was illiquid.
type MsgRedeemTokenResponse struct {
	Redeemed sdk.Coin `json:"redeemed"`
}

// MsgMintReserveRequest harvests the full pending reserve. Authority gated.
type MsgMintReserveRequest struct {
	Authority string `json:"authority"`
}

// MsgMintReserveResponse reports the shares minted to the authority.
type MsgMintReserveResponse struct {
	SharesMinted sdkmath.Int `json:"shares_minted"`
}

// MsgBatchRequest forwards idle deposits to the source. Permissionless.
type MsgBatchRequest struct {
	Caller string `json:"caller"`
}

// MsgBatchResponse reports the amount forwarded, zero when nothing was idle.
type MsgBatchResponse struct {
	Deposited sdk.Coin `json:"deposited"`
}

// ValidateBasic performs stateless validation of a supply request.
func (m MsgSupplyTokenRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Supplier); err != nil {
		return fmt.Errorf("invalid supplier address: %q: %w", m.Supplier, err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Beneficiary); err != nil {
		return fmt.Errorf("invalid beneficiary address: %q: %w", m.Beneficiary, err)
	}
	if err := m.Amount.Validate(); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", m.Amount)
	}
	return nil
}

// ValidateBasic performs stateless validation of a redeem request.
func (m MsgRedeemTokenRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %q: %w", m.Owner, err)
	}
	if err := m.Amount.Validate(); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", m.Amount)
	}
	return nil
}

// ValidateBasic performs stateless validation of a mint-reserve request.
func (m MsgMintReserveRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %q: %w", m.Authority, err)
	}
	return nil
}

// ValidateBasic performs stateless validation of a batch request.
func (m MsgBatchRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return fmt.Errorf("invalid caller address: %q: %w", m.Caller, err)
	}
	return nil
}
