package depot

// Trackers hold the change-tracking state of one dirty window.
//
// Pending has an entry for a material iff its current stock differs from its
// Original stock (0 when Original has no entry). Original holds the value a
// material had before its first unsynced change.
type Trackers struct {
	Pending  Depot `json:"pending"`
	Original Depot `json:"original"`
}

// NewTrackers returns empty trackers.
func NewTrackers() Trackers {
	return Trackers{Pending: Depot{}, Original: Depot{}}
}

// Dirty reports whether any change has not been synced.
func (t Trackers) Dirty() bool {
	return len(t.Pending) > 0
}

func (t Trackers) clone() Trackers {
	return Trackers{Pending: t.Pending.Clone(), Original: t.Original.Clone()}
}

// Phase is the sync state of a store.
type Phase int

const (
	// PhaseClean means local and remote agree.
	PhaseClean Phase = iota
	// PhaseDirty means changes are waiting for a sync.
	PhaseDirty
	// PhaseSyncing means a remote write is in flight.
	PhaseSyncing
)

func (p Phase) String() string {
	switch p {
	case PhaseClean:
		return "clean"
	case PhaseDirty:
		return "dirty"
	case PhaseSyncing:
		return "syncing"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase name in JSON.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func phaseOf(t Trackers, inFlight int) Phase {
	if inFlight > 0 {
		return PhaseSyncing
	}
	if t.Dirty() {
		return PhaseDirty
	}
	return PhaseClean
}

// ApplyPut folds a batch of edits into the depot and trackers.
//
// Items whose stock equals the current stock are skipped one by one. When no
// item changes, the inputs are returned untouched and changed is false.
// Otherwise new maps are returned; current and t are never mutated.
func ApplyPut(current Depot, t Trackers, items []Record) (next Depot, nt Trackers, changed bool) {
	for _, item := range items {
		item = normalize(item)
		if item.MaterialID == "" {
			continue
		}

		if !changed {
			if current.StockOf(item.MaterialID) == item.Stock {
				continue
			}
			next = current.Clone()
			nt = t.clone()
			changed = true
		} else if next.StockOf(item.MaterialID) == item.Stock {
			continue
		}

		id := item.MaterialID
		if _, dirty := nt.Pending[id]; !dirty {
			if prev, existed := next[id]; existed {
				if _, captured := nt.Original[id]; !captured {
					nt.Original[id] = prev
				}
			}
		}

		next[id] = item

		if item.Stock != nt.Original.StockOf(id) {
			nt.Pending[id] = item
		} else {
			delete(nt.Pending, id)
		}
	}

	if !changed {
		return current, t, false
	}
	return next, nt, true
}

// ClearSynced ends the dirty window for records the remote store accepted.
//
// A sent record that still matches the current depot leaves both trackers. A
// record edited again while the write was in flight stays pending, with the
// sent value as its new original. Originals of materials that are no longer
// pending are dropped.
func ClearSynced(current Depot, t Trackers, sent []Record) Trackers {
	nt := t.clone()

	for _, r := range sent {
		if current.StockOf(r.MaterialID) == r.Stock {
			delete(nt.Pending, r.MaterialID)
			delete(nt.Original, r.MaterialID)
			continue
		}
		nt.Original[r.MaterialID] = r
		if cur, ok := current[r.MaterialID]; ok {
			nt.Pending[r.MaterialID] = cur
		} else {
			nt.Pending[r.MaterialID] = Record{MaterialID: r.MaterialID}
		}
	}

	for id := range nt.Original {
		if _, pending := nt.Pending[id]; !pending {
			delete(nt.Original, id)
		}
	}

	return nt
}

func normalize(r Record) Record {
	return Record{MaterialID: r.MaterialID, Stock: ClampStock(r.Stock)}
}
