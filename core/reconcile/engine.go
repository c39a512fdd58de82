package reconcile

import "sort"

// Partition splits records into those whose key is known and the distinct keys that are not.
// It has no side effects; deleting the orphans is a separate step (see Apply).
func Partition[T any](records []T, key func(T) string, known func(string) bool) (valid []T, orphaned []string) {
	seen := make(map[string]struct{})
	valid = make([]T, 0, len(records))

	for _, r := range records {
		k := key(r)
		if known(k) {
			valid = append(valid, r)
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		orphaned = append(orphaned, k)
	}

	sort.Strings(orphaned)
	return valid, orphaned
}

// Build runs Partition and plans one purge action per orphaned key.
func Build[T any](records []T, key func(T) string, known func(string) bool) *Plan[T] {
	valid, orphaned := Partition(records, key, known)

	actions := make([]Action, 0, len(orphaned))
	for _, k := range orphaned {
		actions = append(actions, Action{
			Type:   ActionPurge,
			Key:    k,
			Reason: "not in item catalog",
		})
	}

	return &Plan[T]{
		Valid:    valid,
		Orphaned: orphaned,
		Actions:  actions,
		Summary: PlanSummary{
			TotalItems:   len(records),
			Known:        len(valid),
			Orphaned:     len(orphaned),
			PurgeActions: len(actions),
		},
	}
}
