package qlearn

import "sort"

// QTable maps states to action values. Absent states read as [0,0].
//
// The zero value is not usable; construct with NewQTable.
type QTable struct {
	entries map[State]*Values
}

// NewQTable returns an empty table.
func NewQTable() *QTable {
	return &QTable{entries: make(map[State]*Values)}
}

// Get returns the values of s, inserting [0,0] first if s was never seen.
func (t *QTable) Get(s State) *Values {
	v, ok := t.entries[s]
	if !ok {
		v = &Values{}
		t.entries[s] = v
	}
	return v
}

// Peek returns the values of s without materialising it.
func (t *QTable) Peek(s State) Values {
	if v, ok := t.entries[s]; ok {
		return *v
	}
	return Values{}
}

// Has reports whether s has been materialised.
func (t *QTable) Has(s State) bool {
	_, ok := t.entries[s]
	return ok
}

// Set overwrites the values of s.
func (t *QTable) Set(s State, v Values) {
	*t.Get(s) = v
}

// Len returns the number of materialised states.
func (t *QTable) Len() int {
	return len(t.entries)
}

// States returns the materialised states ordered by item, then remaining capacity.
func (t *QTable) States() []State {
	out := make([]State, 0, len(t.entries))
	for s := range t.entries {
		out = append(out, s)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Item != out[b].Item {
			return out[a].Item < out[b].Item
		}
		return out[a].Remaining < out[b].Remaining
	})
	return out
}
