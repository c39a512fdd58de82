// Package reconcile provides the explicit reconciliation pass used when remote records are
// checked against the static item catalog.
//
// The pass is split in two so the read stays free of side effects:
//
//  1. Partition / Build: split records into (valid, orphaned keys) and plan one purge action per
//     orphaned key. Nothing is mutated.
//
//  2. Apply: execute the purge actions through a Purger in batches, only when the options are
//     confirmed and not a dry run.
//
// # Usage Example
//
//	plan := reconcile.Build(rows, func(r Row) string { return r.MaterialID }, cat.Has)
//	n, err := reconcile.Apply(ctx, plan, remote, reconcile.Options{Confirmed: true})
package reconcile
