// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package memory

// Sequence hands out monotonically increasing ids.
// Not safe for concurrent use; callers hold their own lock.
type Sequence struct {
	next int64
}

// NewSequence returns a sequence whose first Next call returns start.
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current id and advances the sequence.
func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}

// OrderedMap is an id-keyed map that remembers insertion order.
// Not safe for concurrent use.
type OrderedMap[V any] struct {
	keys   []int64
	values map[int64]V
}

func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[int64]V)}
}

// Set stores v under id. Overwriting an existing id keeps its position.
func (m *OrderedMap[V]) Set(id int64, v V) {
	if _, ok := m.values[id]; !ok {
		m.keys = append(m.keys, id)
	}
	m.values[id] = v
}

func (m *OrderedMap[V]) Get(id int64) (V, bool) {
	v, ok := m.values[id]
	return v, ok
}

// Delete removes id and returns the value it held.
func (m *OrderedMap[V]) Delete(id int64) (V, bool) {
	v, ok := m.values[id]
	if !ok {
		return v, false
	}
	delete(m.values, id)
	for i, k := range m.keys {
		if k == id {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Values returns the stored values in insertion order.
func (m *OrderedMap[V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}
