package types

import (
	"cosmossdk.io/core/event"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeReserveCapture = "yieldwrapper.ReserveCapture"
	EventTypeSupply         = "yieldwrapper.Supply"
	EventTypeRedeem         = "yieldwrapper.Redeem"
	EventTypeReserveMinted  = "yieldwrapper.ReserveMinted"
	EventTypeBatch          = "yieldwrapper.Batch"

	AttributeKeyRateBefore     = "rate_before"
	AttributeKeyRateAfter      = "rate_after"
	AttributeKeyAccruedReserve = "accrued_reserve"
	AttributeKeySupplier       = "supplier"
	AttributeKeyBeneficiary    = "beneficiary"
	AttributeKeyOwner          = "owner"
	AttributeKeyAuthority      = "authority"
	AttributeKeyAmount         = "amount"
	AttributeKeyRequested      = "requested"
	AttributeKeyPaid           = "paid"
	AttributeKeyShares         = "shares"
)

// NewEventReserveCapture builds the attributes for a reserve capture that
// accrued a non-zero reserve.
func NewEventReserveCapture(rateBefore, rateAfter sdkmath.LegacyDec, accrued sdkmath.Int) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyRateBefore, Value: rateBefore.String()},
		{Key: AttributeKeyRateAfter, Value: rateAfter.String()},
		{Key: AttributeKeyAccruedReserve, Value: accrued.String()},
	}
}

// NewEventSupply builds the attributes for a deposit.
func NewEventSupply(supplier, beneficiary string, amount sdk.Coin, shares sdkmath.Int) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeySupplier, Value: supplier},
		{Key: AttributeKeyBeneficiary, Value: beneficiary},
		{Key: AttributeKeyAmount, Value: amount.String()},
		{Key: AttributeKeyShares, Value: shares.String()},
	}
}

// NewEventRedeem builds the attributes for a redemption. paid may be less
// than requested when the source was illiquid.
func NewEventRedeem(owner string, requested, paid sdk.Coin, sharesBurned sdkmath.Int) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyOwner, Value: owner},
		{Key: AttributeKeyRequested, Value: requested.String()},
		{Key: AttributeKeyPaid, Value: paid.String()},
		{Key: AttributeKeyShares, Value: sharesBurned.String()},
	}
}

// NewEventReserveMinted builds the attributes for a reserve harvest.
func NewEventReserveMinted(authority string, amount sdk.Coin, shares sdkmath.Int) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyAuthority, Value: authority},
		{Key: AttributeKeyAmount, Value: amount.String()},
		{Key: AttributeKeyShares, Value: shares.String()},
	}
}

// NewEventBatch builds the attributes for a batch deposit into the source.
func NewEventBatch(amount sdk.Coin) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyAmount, Value: amount.String()},
	}
}
