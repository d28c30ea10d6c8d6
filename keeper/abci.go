package keeper

import (
	"context"
)

// BeginBlocker forwards any idle deposits to the yield source at the start
// of every block. Batching is best effort: a failure is logged and the block
// proceeds, since the next deposit or block will retry the same idle funds.
func (k *Keeper) BeginBlocker(ctx context.Context) error {
	if _, err := k.Batch(ctx); err != nil {
		k.getLogger().Error("failed to batch idle deposits", "err", err)
	}
	return nil
}
