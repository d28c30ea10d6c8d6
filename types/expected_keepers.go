package types

import (
	"context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the fungible-token ledger functionality needed by the
// yield wrapper. Balance, transfer, and supply semantics are assumed correct.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// YieldSource is the external custodian that actually holds and yields on
// deposited assets. The wrapper interacts with it through these four
// primitives only.
//
// Withdraw may return less than requested when the source is illiquid; the
// returned amount is the number of tokens actually credited back to the
// caller. That is a normal result, not an error.
type YieldSource interface {
	// DepositDenom reports the denom of the asset the source accepts.
	DepositDenom(ctx context.Context) (string, error)

	// BalanceOf reports the holder's balance in asset units, including any
	// yield accrued by the source.
	BalanceOf(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error)

	// Deposit moves amount from the caller's idle balance into the source's
	// custody, crediting beneficiary.
	Deposit(ctx context.Context, amount sdk.Coin, beneficiary sdk.AccAddress) error

	// Withdraw requests amount back from the source and returns the amount
	// actually withdrawn, which may be smaller.
	Withdraw(ctx context.Context, amount sdk.Coin) (sdkmath.Int, error)
}
