package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func trackAll(t *testing.T, tr *Tracker, hashes []uint64, items []string) []int {
	t.Helper()

	codes := make([]int, len(items))
	for i := range items {
		codes[i], _ = tr.Track(hashes[i], i, func(first int) bool {
			return items[first] == items[i]
		})
	}

	return codes
}

func TestNewTracker(t *testing.T) {
	tr := NewTracker(4)

	require.NotNil(t, tr)
	require.Equal(t, 0, tr.Count())
	require.False(t, tr.HasCollision())
	require.Empty(t, tr.Firsts())
}

func TestTracker_FirstOccurrenceOrder(t *testing.T) {
	tr := NewTracker(0)
	items := []string{"b", "a", "b", "c", "a"}
	hashes := []uint64{2, 1, 2, 3, 1}

	codes := trackAll(t, tr, hashes, items)

	require.Equal(t, []int{0, 1, 0, 2, 1}, codes)
	require.Equal(t, []int{0, 1, 3}, tr.Firsts())
	require.Equal(t, 3, tr.Count())
	require.False(t, tr.HasCollision())
}

func TestTracker_IsNew(t *testing.T) {
	tr := NewTracker(2)
	same := func(int) bool { return true }

	code, isNew := tr.Track(7, 0, same)
	require.Equal(t, 0, code)
	require.True(t, isNew)

	code, isNew = tr.Track(7, 1, same)
	require.Equal(t, 0, code)
	require.False(t, isNew)
}

func TestTracker_Collision(t *testing.T) {
	tr := NewTracker(0)
	items := []string{"x", "y", "x", "y"}
	hashes := []uint64{42, 42, 42, 42}

	codes := trackAll(t, tr, hashes, items)

	require.Equal(t, []int{0, 1, 0, 1}, codes)
	require.True(t, tr.HasCollision())
	require.Equal(t, 2, tr.Count())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(0)
	trackAll(t, tr, []uint64{1, 1}, []string{"p", "q"})
	require.True(t, tr.HasCollision())

	tr.Reset()

	require.Equal(t, 0, tr.Count())
	require.False(t, tr.HasCollision())
	codes := trackAll(t, tr, []uint64{5}, []string{"z"})
	require.Equal(t, []int{0}, codes)
}
