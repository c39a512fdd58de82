package reconcile

import (
	"context"
	"fmt"
)

// Purger deletes records by key.
type Purger interface {
	Purge(ctx context.Context, keys []string) error
}

// PurgerFunc adapts a function to Purger.
type PurgerFunc func(ctx context.Context, keys []string) error

func (f PurgerFunc) Purge(ctx context.Context, keys []string) error { return f(ctx, keys) }

// Apply executes the purge actions of a plan in batches.
// It returns the number of keys purged. Requires opts.Confirmed=true and opts.DryRun=false.
func Apply[T any](ctx context.Context, plan *Plan[T], purger Purger, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if plan == nil || purger == nil {
		return 0, nil
	}

	var keys []string
	for _, action := range plan.Actions {
		if action.Type == ActionPurge {
			keys = append(keys, action.Key)
		}
	}

	size := opts.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	for start := 0; start < len(keys); start += size {
		end := start + size
		if end > len(keys) {
			end = len(keys)
		}
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if err := purger.Purge(ctx, keys[start:end]); err != nil {
			return executed, fmt.Errorf("failed to purge batch %d-%d: %w", start, end, err)
		}
		executed += end - start
	}

	return executed, nil
}
