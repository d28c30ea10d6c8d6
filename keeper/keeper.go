package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pooltogether/wrapped-yield-source/types"
)

// Keeper is the share-accounting engine placed in front of an external
// yield source. All share-mutating and quoting operations run reserve
// capture before consulting the exchange rate.
type Keeper struct {
	schema       collections.Schema
	eventService event.Service
	addressCodec address.Codec
	logger       log.Logger
	authority    sdk.AccAddress
	wrapperAddr  sdk.AccAddress

	BankKeeper  types.BankKeeper
	YieldSource types.YieldSource

	// ReserveRate is the fraction of rate increase diverted to the reserve,
	// configured once at genesis.
	ReserveRate collections.Item[sdkmath.LegacyDec]
	// DepositDenom is the underlying asset denom.
	DepositDenom collections.Item[string]
	// PendingReserve holds tokens owed to the protocol but not yet minted as shares.
	PendingReserve collections.Item[sdkmath.Int]
	// LastExchangeRate is the tokens-per-share rate at the last capture
	// point; zero means never observed.
	LastExchangeRate collections.Item[sdkmath.LegacyDec]
	// Shares is the per-holder share ledger.
	Shares collections.Map[sdk.AccAddress, sdkmath.Int]
	// TotalShares is the aggregate share supply, maintained incrementally on
	// every mint and burn.
	TotalShares collections.Item[sdkmath.Int]
}

func NewKeeper(
	storeService store.KVStoreService,
	eventService event.Service,
	addressCodec address.Codec,
	logger log.Logger,
	bankKeeper types.BankKeeper,
	yieldSource types.YieldSource,
	authority sdk.AccAddress,
) *Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		eventService:     eventService,
		addressCodec:     addressCodec,
		logger:           logger,
		authority:        authority,
		wrapperAddr:      types.GetWrapperAddress(),
		BankKeeper:       bankKeeper,
		YieldSource:      yieldSource,
		ReserveRate:      collections.NewItem(builder, types.ReserveRateKey, types.ReserveRateName, sdk.LegacyDecValue),
		DepositDenom:     collections.NewItem(builder, types.DepositDenomKey, types.DepositDenomName, collections.StringValue),
		PendingReserve:   collections.NewItem(builder, types.PendingReserveKey, types.PendingReserveName, sdk.IntValue),
		LastExchangeRate: collections.NewItem(builder, types.LastExchangeRateKey, types.LastExchangeRateName, sdk.LegacyDecValue),
		Shares:           collections.NewMap(builder, types.SharesKey, types.SharesName, sdk.AccAddressKey, sdk.IntValue),
		TotalShares:      collections.NewItem(builder, types.TotalSharesKey, types.TotalSharesName, sdk.IntValue),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// GetAuthority returns the account allowed to harvest the reserve.
func (k Keeper) GetAuthority() sdk.AccAddress {
	return k.authority
}

// GetWrapperAddress returns the module account the wrapper operates as.
func (k Keeper) GetWrapperAddress() sdk.AccAddress {
	return k.wrapperAddr
}

// getLogger returns a logger with wrapper module context.
func (k Keeper) getLogger() log.Logger {
	return k.logger.With("module", "x/"+types.ModuleName)
}

// emitEvent emits a typed event, logging instead of failing when the event
// manager rejects it.
func (k Keeper) emitEvent(ctx context.Context, eventType string, attrs ...event.Attribute) {
	if err := k.eventService.EventManager(ctx).EmitKV(ctx, eventType, attrs...); err != nil {
		k.getLogger().Error("failed to emit event", "type", eventType, "err", err)
	}
}
