package yieldwrapper

import (
	"context"

	"cosmossdk.io/core/appmodule"

	"github.com/pooltogether/wrapped-yield-source/keeper"
	"github.com/pooltogether/wrapped-yield-source/types"
)

// ConsensusVersion defines the current module consensus version.
const ConsensusVersion = 1

var (
	_ appmodule.AppModule       = AppModule{}
	_ appmodule.HasBeginBlocker = AppModule{}
)

// AppModule wires the wrapper keeper into a chain application.
type AppModule struct {
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule.
func NewAppModule(k *keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

// Name returns the module name.
func (AppModule) Name() string { return types.ModuleName }

// IsAppModule implements the appmodule.AppModule interface.
func (AppModule) IsAppModule() {}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (AppModule) IsOnePerModuleType() {}

// BeginBlock forwards idle deposits to the yield source each block.
func (am AppModule) BeginBlock(ctx context.Context) error {
	return am.keeper.BeginBlocker(ctx)
}
