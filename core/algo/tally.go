package algo

// Tally counts occurrences of comparable values and remembers the order in
// which each distinct value was first seen.
type Tally[K comparable] struct {
	counts map[K]int
	order  []K
}

// NewTally creates an empty tally.
func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

// Add records one occurrence of key.
func (t *Tally[K]) Add(key K) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Count returns how many times key was added.
func (t *Tally[K]) Count(key K) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Tally[K]) Len() int {
	return len(t.order)
}

// Total returns the number of Add calls.
func (t *Tally[K]) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Mode returns the most frequent key. Ties go to the key that was added first.
// The boolean is false when nothing was added.
func (t *Tally[K]) Mode() (K, bool) {
	var best K
	bestCount := 0
	for _, key := range t.order {
		if n := t.counts[key]; n > bestCount {
			best, bestCount = key, n
		}
	}
	return best, bestCount > 0
}

// ModeOf tallies values and returns their mode.
func ModeOf[K comparable](values []K) (K, bool) {
	t := NewTally[K]()
	for _, v := range values {
		t.Add(v)
	}
	return t.Mode()
}
