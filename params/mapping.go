package params

// Mapping is an insertion-ordered set of named parameter values. It is the
// unit of work for the expander and the provenance tagger: callers build
// one, pass it through, and own the result. A Mapping is not safe for
// concurrent mutation; the intended usage is one mapping per configuration.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set inserts or replaces the value for key and returns the mapping so
// calls can be chained when building a configuration literal. Insertion
// order of first appearance is preserved and drives output ordering.
func (m *Mapping) Set(key string, v Value) *Mapping {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return m
}

// Get returns the value for key and whether it is present.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key from the mapping. Removing an absent key is a no-op.
func (m *Mapping) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy of the mapping. Values are immutable
// once constructed, so sharing them between clones is safe: mutating one
// clone via Set or Delete never affects another.
func (m *Mapping) Clone() *Mapping {
	out := &Mapping{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]Value, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Equal reports whether two mappings hold the same keys bound to equal
// values. Key order is ignored; only content matters.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.values) != len(other.values) {
		return false
	}
	for k, v := range m.values {
		ov, ok := other.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
