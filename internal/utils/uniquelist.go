package utils

// UniqueList is an ordered collection with first-seen-wins deduplication by
// key. Both the artist candidate accumulator and metro area matching fold
// upstream results through it, so insertion order is the order of first
// appearance and later duplicates are dropped, never merged.
type UniqueList[K comparable, V any] struct {
	seen   map[K]struct{}
	values []V
}

func NewUniqueList[K comparable, V any]() *UniqueList[K, V] {
	return &UniqueList[K, V]{
		seen: make(map[K]struct{}),
	}
}

// Add appends value under key, reporting whether it was newly added.
// A duplicate key leaves the list unchanged.
func (l *UniqueList[K, V]) Add(key K, value V) bool {
	if _, ok := l.seen[key]; ok {
		return false
	}
	l.seen[key] = struct{}{}
	l.values = append(l.values, value)
	return true
}

// Has reports whether key is already present
func (l *UniqueList[K, V]) Has(key K) bool {
	_, ok := l.seen[key]
	return ok
}

func (l *UniqueList[K, V]) Len() int {
	return len(l.values)
}

// Values returns the collected values in insertion order. The returned slice
// is the list's backing storage; callers must not mutate it while still
// adding entries.
func (l *UniqueList[K, V]) Values() []V {
	return l.values
}
