// Package depot keeps a player's depot of crafting materials in sync with a
// remote table.
//
// Every edit lands in the local depot at once and is persisted to a local
// key-value store. Changes are tracked against the value each material had
// before its first unsynced edit, so editing a value back to where it started
// drops it from the pending set. Pending changes reach the remote store after a
// quiet window (5s by default) or immediately when asked.
//
// # State
//
//   - Depot: material id to Record, replaced copy-on-write.
//   - Trackers: Pending (what must be pushed) and Original (the pre-edit values).
//   - Phase: clean, dirty or syncing.
//
// ApplyPut and ClearSynced are the pure transitions; Store wraps them with
// locking, persistence and the Debouncer.
//
// # Bootstrap
//
// On first use a store loads the remote rows of its user, drops rows whose
// material is not in the catalog (deleting them remotely, best effort) and
// replaces the local depot. Guests keep their local depot.
//
// # HTTP Endpoints
//
//   - GET /depot : Current depot and sync state.
//   - PUT /depot : Apply edits (supports "immediate").
//   - POST /depot/input : Raw text input for one material.
//   - POST /depot/step : +/- buttons.
//   - POST /depot/sync : Flush pending changes.
//   - POST /depot/refresh : Re-arm the debounce timer.
//   - POST /depot/reset : Zero every material and push at once.
package depot
