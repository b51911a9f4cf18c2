// Package dedup assigns dense codes to distinct elements in first-occurrence order.
package dedup

// Tracker maps element hashes to codes and resolves hash collisions with a
// caller-supplied equality check, so two distinct elements never share a code
// even when their hashes collide.
type Tracker struct {
	buckets   map[uint64][]int // hash → codes sharing that hash
	firsts    []int            // code → position of its first occurrence
	collision bool             // whether two distinct elements shared a hash
}

// NewTracker creates a tracker sized for about capHint distinct elements.
func NewTracker(capHint int) *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]int, capHint),
		firsts:  make([]int, 0, capHint),
	}
}

// Track returns the code of the element at pos whose hash is h.
//
// sameAs reports whether the element at pos equals the element first seen at
// the given position; it is only called for candidates with the same hash.
// isNew is true when pos is the first occurrence of its element.
func (t *Tracker) Track(h uint64, pos int, sameAs func(first int) bool) (code int, isNew bool) {
	codes := t.buckets[h]
	for _, c := range codes {
		if sameAs(t.firsts[c]) {
			return c, false
		}
	}

	if len(codes) > 0 {
		t.collision = true
	}

	code = len(t.firsts)
	t.firsts = append(t.firsts, pos)
	t.buckets[h] = append(codes, code)

	return code, true
}

// Firsts returns the position of the first occurrence of every code, indexed by code.
func (t *Tracker) Firsts() []int {
	return t.firsts
}

// Count returns the number of distinct elements tracked.
func (t *Tracker) Count() int {
	return len(t.firsts)
}

// HasCollision reports whether two distinct elements shared a hash.
func (t *Tracker) HasCollision() bool {
	return t.collision
}

// Reset clears all tracked elements while keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.buckets)
	t.firsts = t.firsts[:0]
	t.collision = false
}
