package core

// Registry maps identity keys to attendees with last-write-wins semantics.
//
// It also remembers the order in which keys were first seen. Replacing an
// attendee keeps its original slot, so iteration order is deterministic and
// matches first appearance in the input.
type Registry struct {
	order []string
	byKey map[string]Attendee
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Attendee)}
}

// Put stores a under its name, replacing any earlier entry wholesale.
// It reports whether an entry was replaced.
func (r *Registry) Put(a Attendee) bool {
	if _, exists := r.byKey[a.Name]; exists {
		r.byKey[a.Name] = a
		return true
	}
	r.order = append(r.order, a.Name)
	r.byKey[a.Name] = a
	return false
}

// Get returns the attendee stored under key.
func (r *Registry) Get(key string) (Attendee, bool) {
	a, ok := r.byKey[key]
	return a, ok
}

// Len returns the number of unique attendees.
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns the attendees in first-seen order.
func (r *Registry) All() []Attendee {
	out := make([]Attendee, len(r.order))
	for i, key := range r.order {
		out[i] = r.byKey[key]
	}
	return out
}

// FoldStats counts what happened while building a registry.
type FoldStats struct {
	Rows     int // records consumed
	Dropped  int // records without a first or last name
	Replaced int // records that overwrote an earlier one
}

// BuildRegistry folds records into a new registry in file order.
func BuildRegistry(records []Record, cols Columns) (*Registry, FoldStats) {
	reg := NewRegistry()
	stats := FoldStats{Rows: len(records)}

	for _, rec := range records {
		a, ok := NewAttendee(rec, cols)
		if !ok {
			stats.Dropped++
			continue
		}
		if reg.Put(a) {
			stats.Replaced++
		}
	}

	return reg, stats
}
