package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultDepositDenom is the underlying asset denom used when none is configured.
const DefaultDepositDenom = "uusd"

// ShareBalance is a single entry of the share ledger.
type ShareBalance struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
}

// GenesisState holds the wrapper's full persisted state: the four scalar
// fields plus the share ledger. The total share supply is not part of
// genesis; it is derived from the ledger entries on import.
type GenesisState struct {
	ReserveRate      sdkmath.LegacyDec `json:"reserve_rate"`
	DepositDenom     string            `json:"deposit_denom"`
	PendingReserve   sdkmath.Int       `json:"pending_reserve"`
	LastExchangeRate sdkmath.LegacyDec `json:"last_exchange_rate"`
	Shares           []ShareBalance    `json:"shares"`
}

// NewGenesisState returns a genesis state with the given configuration and
// an empty ledger.
func NewGenesisState(reserveRate sdkmath.LegacyDec, depositDenom string) *GenesisState {
	return &GenesisState{
		ReserveRate:      reserveRate,
		DepositDenom:     depositDenom,
		PendingReserve:   sdkmath.ZeroInt(),
		LastExchangeRate: sdkmath.LegacyZeroDec(),
		Shares:           []ShareBalance{},
	}
}

// DefaultGenesisState returns the default genesis state: no reserve capture
// and the default deposit denom.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(sdkmath.LegacyZeroDec(), DefaultDepositDenom)
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if gs.ReserveRate.IsNil() || gs.ReserveRate.IsNegative() || gs.ReserveRate.GT(sdkmath.LegacyOneDec()) {
		return fmt.Errorf("reserve rate must be between 0 and 1, got %s", gs.ReserveRate)
	}

	if err := sdk.ValidateDenom(gs.DepositDenom); err != nil {
		return fmt.Errorf("invalid deposit denom %q: %w", gs.DepositDenom, err)
	}

	if gs.PendingReserve.IsNil() || gs.PendingReserve.IsNegative() {
		return fmt.Errorf("pending reserve must not be negative, got %s", gs.PendingReserve)
	}

	if gs.LastExchangeRate.IsNil() || gs.LastExchangeRate.IsNegative() {
		return fmt.Errorf("last exchange rate must not be negative, got %s", gs.LastExchangeRate)
	}

	seen := make(map[string]bool, len(gs.Shares))
	for i, entry := range gs.Shares {
		if _, err := sdk.AccAddressFromBech32(entry.Address); err != nil {
			return fmt.Errorf("invalid share holder address at index %d: %q: %w", i, entry.Address, err)
		}
		if seen[entry.Address] {
			return fmt.Errorf("duplicate share holder address %q", entry.Address)
		}
		seen[entry.Address] = true
		if entry.Amount.IsNil() || !entry.Amount.IsPositive() {
			return fmt.Errorf("share balance for %q must be positive, got %s", entry.Address, entry.Amount)
		}
	}

	// An un-bootstrapped ledger must not carry a rate observation.
	if len(gs.Shares) == 0 && !gs.LastExchangeRate.IsZero() {
		return fmt.Errorf("last exchange rate %s recorded with zero share supply", gs.LastExchangeRate)
	}

	return nil
}
