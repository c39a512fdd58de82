package depot

import "sort"

// Record is the persisted shape of one depot entry.
type Record struct {
	MaterialID string `json:"material_id"`
	Stock      int64  `json:"stock"`
}

// Depot maps material id to its record.
type Depot map[string]Record

// Clone returns a shallow copy; records are values so the copy is independent.
func (d Depot) Clone() Depot {
	out := make(Depot, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// StockOf returns the stock of id, or 0 when the depot has no record for it.
func (d Depot) StockOf(id string) int64 {
	return d[id].Stock
}

// Records returns the records ordered by material id.
func (d Depot) Records() []Record {
	out := make([]Record, 0, len(d))
	for _, r := range d {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaterialID < out[j].MaterialID })
	return out
}

// Zeroed returns a copy with every stock set to 0.
func (d Depot) Zeroed() Depot {
	out := make(Depot, len(d))
	for k := range d {
		out[k] = Record{MaterialID: k, Stock: 0}
	}
	return out
}
