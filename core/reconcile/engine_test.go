package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID    string
	Stock int
}

func rowKey(r row) string { return r.ID }

func knownSet(keys ...string) func(string) bool {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(k string) bool {
		_, ok := set[k]
		return ok
	}
}

func TestPartition(t *testing.T) {
	records := []row{{"A", 1}, {"Z", 2}, {"B", 3}, {"Y", 4}, {"Z", 5}}

	valid, orphaned := Partition(records, rowKey, knownSet("A", "B"))

	assert.Equal(t, []row{{"A", 1}, {"B", 3}}, valid)
	assert.Equal(t, []string{"Y", "Z"}, orphaned, "orphans are sorted and de-duplicated")
}

func TestPartition_Empty(t *testing.T) {
	valid, orphaned := Partition(nil, rowKey, knownSet("A"))
	assert.Empty(t, valid)
	assert.Nil(t, orphaned)
}

func TestBuild(t *testing.T) {
	plan := Build([]row{{"A", 1}, {"Z", 2}}, rowKey, knownSet("A"))

	assert.Equal(t, []row{{"A", 1}}, plan.Valid)
	assert.Equal(t, []string{"Z"}, plan.Orphaned)
	assert.Equal(t, []Action{{Type: ActionPurge, Key: "Z", Reason: "not in item catalog"}}, plan.Actions)
	assert.Equal(t, PlanSummary{TotalItems: 2, Known: 1, Orphaned: 1, PurgeActions: 1}, plan.Summary)
}
