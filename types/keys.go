package types

import (
	"cosmossdk.io/collections"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "yieldwrapper"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// ReserveRateKey is the key for the configured reserve rate.
	ReserveRateKey = collections.NewPrefix(0)
	// ReserveRateName is a human-readable name for the reserve rate item.
	ReserveRateName = "reserve_rate"
	// DepositDenomKey is the key for the underlying asset denom.
	DepositDenomKey = collections.NewPrefix(1)
	// DepositDenomName is a human-readable name for the deposit denom item.
	DepositDenomName = "deposit_denom"
	// PendingReserveKey is the key for the unharvested reserve accumulator.
	PendingReserveKey = collections.NewPrefix(2)
	// PendingReserveName is a human-readable name for the pending reserve item.
	PendingReserveName = "pending_reserve"
	// LastExchangeRateKey is the key for the last observed tokens-per-share rate.
	LastExchangeRateKey = collections.NewPrefix(3)
	// LastExchangeRateName is a human-readable name for the last exchange rate item.
	LastExchangeRateName = "last_exchange_rate"
	// SharesKey is the prefix for the per-holder share ledger.
	SharesKey = collections.NewPrefix(4)
	// SharesName is a human-readable name for the share ledger.
	SharesName = "shares"
	// TotalSharesKey is the key for the total share supply.
	TotalSharesKey = collections.NewPrefix(5)
	// TotalSharesName is a human-readable name for the total share supply item.
	TotalSharesName = "total_shares"
)

// GetWrapperAddress returns the module account address that holds the
// wrapper's idle underlying balance and its position in the yield source.
func GetWrapperAddress() sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(ModuleName)))
}
