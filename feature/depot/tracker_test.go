package depot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(id string, stock int64) Record { return Record{MaterialID: id, Stock: stock} }

func TestApplyPut_Idempotent(t *testing.T) {
	current := Depot{"A": rec("A", 5)}
	trackers := NewTrackers()

	next, nt, changed := ApplyPut(current, trackers, []Record{rec("A", 5)})

	assert.False(t, changed)
	assert.Equal(t, current, next)
	assert.Equal(t, trackers, nt)
}

func TestApplyPut_NetZeroElision(t *testing.T) {
	current := Depot{"A": rec("A", 5)}

	d, tr, changed := ApplyPut(current, NewTrackers(), []Record{rec("A", 8)})
	assert.True(t, changed)
	assert.Equal(t, rec("A", 8), tr.Pending["A"])

	d, tr, changed = ApplyPut(d, tr, []Record{rec("A", 5)})
	assert.True(t, changed)
	assert.Equal(t, int64(5), d.StockOf("A"))
	assert.NotContains(t, tr.Pending, "A")
	assert.False(t, tr.Dirty())
}

func TestApplyPut_DirtyAccumulation(t *testing.T) {
	current := Depot{"A": rec("A", 5)}

	d, tr, _ := ApplyPut(current, NewTrackers(), []Record{rec("A", 8)})
	_, tr, _ = ApplyPut(d, tr, []Record{rec("A", 10)})

	assert.Equal(t, rec("A", 5), tr.Original["A"], "original is captured once")
	assert.Equal(t, rec("A", 10), tr.Pending["A"], "pending holds the latest value")
}

func TestApplyPut_NewMaterial(t *testing.T) {
	d, tr, changed := ApplyPut(Depot{}, NewTrackers(), []Record{rec("B", 3)})

	assert.True(t, changed)
	assert.Equal(t, rec("B", 3), d["B"])
	assert.NotContains(t, tr.Original, "B", "no prior value, nothing to capture")
	assert.Equal(t, rec("B", 3), tr.Pending["B"])

	_, tr, _ = ApplyPut(d, tr, []Record{rec("B", 0)})
	assert.NotContains(t, tr.Pending, "B", "back to the implicit baseline of 0")
}

func TestApplyPut_NewMaterialEditedTwice(t *testing.T) {
	d, tr, _ := ApplyPut(Depot{}, NewTrackers(), []Record{rec("B", 3)})
	d, tr, _ = ApplyPut(d, tr, []Record{rec("B", 7)})

	assert.NotContains(t, tr.Original, "B", "later edits in the window capture nothing")
	assert.Equal(t, rec("B", 7), tr.Pending["B"])

	synced := ClearSynced(d, tr, []Record{rec("B", 7)})
	_, tr, _ = ApplyPut(d, synced, []Record{rec("B", 0)})

	assert.Equal(t, rec("B", 7), tr.Original["B"], "a new window captures the synced value")
	assert.Equal(t, rec("B", 0), tr.Pending["B"])
}

func TestApplyPut_NewMaterialAtZeroIsNoop(t *testing.T) {
	_, _, changed := ApplyPut(Depot{}, NewTrackers(), []Record{rec("B", 0)})
	assert.False(t, changed)
}

func TestApplyPut_PerItemDetection(t *testing.T) {
	current := Depot{"A": rec("A", 1), "B": rec("B", 2)}

	d, tr, changed := ApplyPut(current, NewTrackers(), []Record{rec("A", 1), rec("B", 7)})

	assert.True(t, changed)
	assert.Equal(t, Depot{"B": rec("B", 7)}, tr.Pending)
	assert.Equal(t, Depot{"B": rec("B", 2)}, tr.Original)
	assert.Equal(t, int64(1), d.StockOf("A"))
}

func TestApplyPut_DoesNotMutateInputs(t *testing.T) {
	current := Depot{"A": rec("A", 1)}
	trackers := NewTrackers()

	_, _, _ = ApplyPut(current, trackers, []Record{rec("A", 9), rec("C", 4)})

	assert.Equal(t, Depot{"A": rec("A", 1)}, current)
	assert.Empty(t, trackers.Pending)
	assert.Empty(t, trackers.Original)
}

func TestApplyPut_NormalizesItems(t *testing.T) {
	d, _, changed := ApplyPut(Depot{"A": rec("A", 4)}, NewTrackers(), []Record{rec("A", -3), rec("", 9)})

	assert.True(t, changed)
	assert.Equal(t, int64(0), d.StockOf("A"))
	assert.NotContains(t, d, "")
}

func TestClearSynced(t *testing.T) {
	current := Depot{"A": rec("A", 8)}
	trackers := Trackers{
		Pending:  Depot{"A": rec("A", 8)},
		Original: Depot{"A": rec("A", 5)},
	}

	nt := ClearSynced(current, trackers, []Record{rec("A", 8)})

	assert.Empty(t, nt.Pending)
	assert.Empty(t, nt.Original)
	assert.Len(t, trackers.Pending, 1, "input untouched")
}

func TestClearSynced_ChangedWhileInFlight(t *testing.T) {
	current := Depot{"A": rec("A", 12), "B": rec("B", 1)}
	trackers := Trackers{
		Pending:  Depot{"A": rec("A", 12), "B": rec("B", 1)},
		Original: Depot{"A": rec("A", 5)},
	}

	nt := ClearSynced(current, trackers, []Record{rec("A", 8)})

	assert.Equal(t, rec("A", 12), nt.Pending["A"])
	assert.Equal(t, rec("A", 8), nt.Original["A"], "the remote now holds the sent value")
	assert.Equal(t, rec("B", 1), nt.Pending["B"], "unsent entries stay pending")
}

func TestClearSynced_RevertedWhileInFlight(t *testing.T) {
	// baseline 5, 8 was sent, then the user typed 5 again
	current := Depot{"A": rec("A", 5)}
	trackers := Trackers{Pending: Depot{}, Original: Depot{"A": rec("A", 5)}}

	nt := ClearSynced(current, trackers, []Record{rec("A", 8)})

	assert.Equal(t, rec("A", 5), nt.Pending["A"])
	assert.Equal(t, rec("A", 8), nt.Original["A"])
}

func TestPhaseOf(t *testing.T) {
	dirty := Trackers{Pending: Depot{"A": rec("A", 1)}, Original: Depot{}}

	assert.Equal(t, PhaseClean, phaseOf(NewTrackers(), 0))
	assert.Equal(t, PhaseDirty, phaseOf(dirty, 0))
	assert.Equal(t, PhaseSyncing, phaseOf(dirty, 1))
	assert.Equal(t, "syncing", PhaseSyncing.String())
}
