package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionPurge deletes a record whose key is no longer known.
	ActionPurge ActionType = "purge"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the record identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains the outcome of a reconciliation pass and the mutations it implies.
type Plan[T any] struct {
	// Valid holds the records whose key is known, in input order.
	Valid []T `json:"valid"`

	// Orphaned holds the sorted, de-duplicated keys that are not known.
	Orphaned []string `json:"orphaned"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalItems is the number of input records.
	TotalItems int `json:"total_items"`

	// Known counts records kept.
	Known int `json:"known"`

	// Orphaned counts distinct unknown keys.
	Orphaned int `json:"orphaned"`

	// PurgeActions counts planned purge actions.
	PurgeActions int `json:"purge_actions"`
}

// Options controls whether a plan is executed.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the caller accepted destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool

	// BatchSize bounds the keys handed to one Purge call. Zero means DefaultBatchSize.
	BatchSize int
}

// DefaultBatchSize is the purge chunk size used when Options.BatchSize is zero.
const DefaultBatchSize = 500
