package mocks

import (
	"context"
	"fmt"
	"testing"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/log"

	"github.com/pooltogether/wrapped-yield-source/keeper"
	"github.com/pooltogether/wrapped-yield-source/types"
)

// NewWrapperKeeper returns a keeper over a real KV store with the bank and
// yield source capabilities mocked.
func NewWrapperKeeper(t testing.TB, authority sdk.AccAddress) (sdk.Context, *keeper.Keeper, *BankKeeper, *YieldSource) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	testCtx := testutil.DefaultContextWithDB(t, key, tkey)

	bank := NewBankKeeper()
	source := NewYieldSource(types.DefaultDepositDenom, bank)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		runtime.ProvideEventService(),
		addresscodec.NewBech32Codec("cosmos"),
		log.NewNopLogger(),
		bank,
		source,
		authority,
	)

	return testCtx.Ctx, k, bank, source
}

// BankKeeper is an in-memory fungible-token ledger.
type BankKeeper struct {
	balances map[string]sdk.Coins
}

var _ types.BankKeeper = (*BankKeeper)(nil)

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits coins out of thin air, for test setup.
func (b *BankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(amt...)
}

func (b *BankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := b.balances[fromAddr.String()]
	if !from.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr, from, amt)
	}
	b.balances[fromAddr.String()] = from.Sub(amt...)
	b.balances[toAddr.String()] = b.balances[toAddr.String()].Add(amt...)
	return nil
}

func (b *BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *BankKeeper) GetAllBalances(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return b.balances[addr.String()]
}

// YieldSource is a configurable external custodian. Deposits pull real coins
// from the depositor into the source account; reported balances can be
// inflated with Accrue to simulate yield, and withdrawals can be capped with
// SetLiquid to simulate illiquidity.
type YieldSource struct {
	denom      string
	bank       *BankKeeper
	sourceAddr sdk.AccAddress

	balances map[string]sdkmath.Int
	// liquid caps the next withdrawal when non-nil.
	liquid *sdkmath.Int

	DepositCalls  []sdk.Coin
	WithdrawCalls []sdk.Coin
}

var _ types.YieldSource = (*YieldSource)(nil)

func NewYieldSource(denom string, bank *BankKeeper) *YieldSource {
	return &YieldSource{
		denom:      denom,
		bank:       bank,
		sourceAddr: sdk.AccAddress("yield_source________"),
		balances:   make(map[string]sdkmath.Int),
	}
}

// Accrue inflates the holder's reported balance without moving coins,
// simulating yield earned inside the custodian.
func (y *YieldSource) Accrue(holder sdk.AccAddress, amount sdkmath.Int) {
	y.balances[holder.String()] = y.balanceOf(holder).Add(amount)
	// Back the accrual with real coins so withdrawals can pay out.
	y.bank.FundAccount(y.sourceAddr, sdk.NewCoins(sdk.NewCoin(y.denom, amount)))
}

// SetBalance overwrites the holder's reported balance.
func (y *YieldSource) SetBalance(holder sdk.AccAddress, amount sdkmath.Int) {
	y.balances[holder.String()] = amount
}

// SetLiquid caps the amount the next withdrawals can return.
func (y *YieldSource) SetLiquid(amount sdkmath.Int) {
	y.liquid = &amount
}

func (y *YieldSource) balanceOf(holder sdk.AccAddress) sdkmath.Int {
	if bal, ok := y.balances[holder.String()]; ok {
		return bal
	}
	return sdkmath.ZeroInt()
}

func (y *YieldSource) DepositDenom(_ context.Context) (string, error) {
	return y.denom, nil
}

func (y *YieldSource) BalanceOf(_ context.Context, holder sdk.AccAddress) (sdkmath.Int, error) {
	return y.balanceOf(holder), nil
}

func (y *YieldSource) Deposit(ctx context.Context, amount sdk.Coin, beneficiary sdk.AccAddress) error {
	if amount.Denom != y.denom {
		return fmt.Errorf("source accepts %s, got %s", y.denom, amount.Denom)
	}
	if err := y.bank.SendCoins(ctx, beneficiary, y.sourceAddr, sdk.NewCoins(amount)); err != nil {
		return err
	}
	y.balances[beneficiary.String()] = y.balanceOf(beneficiary).Add(amount.Amount)
	y.DepositCalls = append(y.DepositCalls, amount)
	return nil
}

func (y *YieldSource) Withdraw(ctx context.Context, amount sdk.Coin) (sdkmath.Int, error) {
	y.WithdrawCalls = append(y.WithdrawCalls, amount)

	wrapper := types.GetWrapperAddress()
	available := y.balanceOf(wrapper)
	returned := amount.Amount
	if available.LT(returned) {
		returned = available
	}
	if y.liquid != nil && y.liquid.LT(returned) {
		returned = *y.liquid
	}
	if !returned.IsPositive() {
		return sdkmath.ZeroInt(), nil
	}

	y.balances[wrapper.String()] = available.Sub(returned)
	if err := y.bank.SendCoins(ctx, y.sourceAddr, wrapper, sdk.NewCoins(sdk.NewCoin(y.denom, returned))); err != nil {
		return sdkmath.Int{}, err
	}
	return returned, nil
}
