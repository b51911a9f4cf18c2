package array

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ragged/errs"
)

func TestIsMissing(t *testing.T) {
	r := sample()

	require.Equal(t, []bool{false, false, true, false}, r.IsMissing())
	require.True(t, r.HasMissing())
	require.True(t, r.IsMissingAt(2))
	require.True(t, r.IsMissingAt(-2))
	require.False(t, r.IsMissingAt(0))

	bm := r.MissingBitmap()
	require.Equal(t, uint64(1), bm.GetCardinality())
	require.True(t, bm.Contains(2))

	full := FromSlices([][]int64{{1}})
	require.False(t, full.HasMissing())
	require.True(t, full.MissingBitmap().IsEmpty())
}

func TestIsMissing_TrailingOffsetAtEnd(t *testing.T) {
	r, err := FromBuffers([]uint8{0, 3}, []int64{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, []bool{false, true}, r.IsMissing())
}

func TestFillMissing_Value(t *testing.T) {
	r := sample()

	filled, err := r.FillMissing(FillWithValue([]int64{9}))
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 2}, {3}, {9}, {4, 5, 6}}, filled.ToSlices())
	require.False(t, filled.HasMissing())

	// the receiver is untouched
	require.Equal(t, [][]int64{{1, 2}, {3}, nil, {4, 5, 6}}, r.ToSlices())
}

func TestFillMissing_NilValueKeepsMissing(t *testing.T) {
	r := sample()

	filled, err := r.FillMissing(FillWithValue[int64](nil))
	require.NoError(t, err)
	require.True(t, filled.Equals(r))
}

func TestFillMissing_Sequence(t *testing.T) {
	r := FromSlices([][]float64{nil, {1}, nil})

	filled, err := r.FillMissing(FillWithSequence([][]float64{{7}, {100}, {8, 8}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7}, {1}, {8, 8}}, filled.ToSlices(), "non-missing positions ignore the sequence")

	_, err = r.FillMissing(FillWithSequence([][]float64{{7}}))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestFillMissing_Array(t *testing.T) {
	r := FromSlices([][]int16{{1}, nil, nil})
	other := FromSlices([][]int16{{9}, {8}, nil})

	filled, err := r.FillMissing(FillWithArray(other))
	require.NoError(t, err)
	require.Equal(t, [][]int16{{1}, {8}, nil}, filled.ToSlices())

	_, err = r.FillMissing(FillWithArray(FromSlices([][]int16{{1}})))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = r.FillMissing(FillWithArray[int16](nil))
	require.ErrorIs(t, err, errs.ErrConfiguration)
}

func TestFillMissing_Forward(t *testing.T) {
	r := FromSlices([][]int32{nil, {1}, nil, nil, nil, {2}, nil})

	tests := []struct {
		name  string
		limit int
		want  [][]int32
	}{
		{"unlimited", 0, [][]int32{nil, {1}, {1}, {1}, {1}, {2}, {2}}},
		{"negative is unlimited", -3, [][]int32{nil, {1}, {1}, {1}, {1}, {2}, {2}}},
		{"limit one", 1, [][]int32{nil, {1}, {1}, nil, nil, {2}, {2}}},
		{"limit two", 2, [][]int32{nil, {1}, {1}, {1}, nil, {2}, {2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, err := r.FillMissing(FillForward[int32](tt.limit))
			require.NoError(t, err)
			require.Equal(t, tt.want, filled.ToSlices())
		})
	}
}

func TestFillMissing_Backward(t *testing.T) {
	r := FromSlices([][]int32{nil, {1}, nil, nil, nil, {2}, nil})

	tests := []struct {
		name  string
		limit int
		want  [][]int32
	}{
		{"unlimited", 0, [][]int32{{1}, {1}, {2}, {2}, {2}, {2}, nil}},
		{"limit one", 1, [][]int32{{1}, {1}, nil, nil, {2}, {2}, nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, err := r.FillMissing(FillBackward[int32](tt.limit))
			require.NoError(t, err)
			require.Equal(t, tt.want, filled.ToSlices())
		})
	}
}

func TestFillMissing_NoMissingIsDeepCopy(t *testing.T) {
	r := FromSlices([][]uint8{{1}, {2, 3}})

	// a mismatched sequence is never consulted when nothing is missing
	filled, err := r.FillMissing(FillWithSequence([][]uint8{{9}}))
	require.NoError(t, err)
	require.True(t, filled.Equals(r))
	require.NotSame(t, &r.Values()[0], &filled.Values()[0])
}

func TestFillMissing_NilStrategy(t *testing.T) {
	_, err := sample().FillMissing(nil)
	require.ErrorIs(t, err, errs.ErrConfiguration)
}

func TestShift(t *testing.T) {
	r := FromSlices([][]int64{{1}, {2, 2}, nil, {4}})

	tests := []struct {
		name    string
		periods int
		fill    []int64
		want    [][]int64
	}{
		{"zero", 0, nil, [][]int64{{1}, {2, 2}, nil, {4}}},
		{"forward one", 1, nil, [][]int64{nil, {1}, {2, 2}, nil}},
		{"forward two with fill", 2, []int64{0}, [][]int64{{0}, {0}, {1}, {2, 2}}},
		{"backward one", -1, nil, [][]int64{{2, 2}, nil, {4}, nil}},
		{"backward three with fill", -3, []int64{7, 7}, [][]int64{{4}, {7, 7}, {7, 7}, {7, 7}}},
		{"beyond length", 10, nil, [][]int64{nil, nil, nil, nil}},
		{"beyond length backward", -4, []int64{5}, [][]int64{{5}, {5}, {5}, {5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Shift(tt.periods, tt.fill)
			require.Equal(t, r.Len(), got.Len())
			require.Equal(t, tt.want, got.ToSlices())
		})
	}
}

func TestShift_EmptyAndZeroAreDeepCopies(t *testing.T) {
	empty := Empty[float64]()
	require.Equal(t, 0, empty.Shift(3, []float64{1}).Len())

	r := sample()
	same := r.Shift(0, nil)
	require.True(t, same.Equals(r))
	require.NotSame(t, &r.Values()[0], &same.Values()[0])
}
