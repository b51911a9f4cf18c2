package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElement_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want int
	}{
		{"equal", []float64{1, 2}, []float64{1, 2}, 0},
		{"less by value", []float64{1, 2}, []float64{1, 3}, -1},
		{"greater by value", []float64{2}, []float64{1, 9}, 1},
		{"prefix first", []float64{1}, []float64{1, 0}, -1},
		{"longer after prefix", []float64{1, 0}, []float64{1}, 1},
		{"missing last", nil, []float64{1}, 1},
		{"present before missing", []float64{math.Inf(1)}, nil, -1},
		{"missing ties missing", nil, nil, 0},
		{"nan first", []float64{math.NaN()}, []float64{math.Inf(-1)}, -1},
		{"nan ties nan", []float64{math.NaN()}, []float64{math.NaN()}, 0},
		{"signed zeros tie", []float64{math.Copysign(0, -1)}, []float64{0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewElement(tt.a), NewElement(tt.b)
			require.Equal(t, tt.want, a.Compare(b))
			require.Equal(t, -tt.want, b.Compare(a))
			require.Equal(t, tt.want < 0, a.Less(b))
		})
	}
}

func TestElement_EqualAndHash(t *testing.T) {
	a := NewElement([]float64{1, math.NaN(), 0})
	b := NewElement([]float64{1, math.NaN(), math.Copysign(0, -1)})
	c := NewElement([]float64{1, math.NaN()})

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(c))
	require.NotEqual(t, a.Hash(), c.Hash())
}

func TestElement_Missing(t *testing.T) {
	missing := MissingElement[int32]()
	empty := NewElement([]int32{})

	require.True(t, missing.IsMissing())
	require.True(t, empty.IsMissing())
	require.Nil(t, empty.Values())

	require.False(t, missing.Equal(missing), "missing is never equal")
	require.False(t, missing.Equal(NewElement([]int32{1})))
	require.Equal(t, 0, missing.Compare(empty))
	require.Equal(t, missing.Hash(), empty.Hash())
}

func TestElementOf(t *testing.T) {
	r := sample()

	require.Equal(t, []int64{4, 5, 6}, r.ElementOf(-1).Values())
	require.True(t, r.ElementOf(2).IsMissing())
	require.True(t, r.ElementOf(0).Equal(NewElement([]int64{1, 2})))
	require.Panics(t, func() { r.ElementOf(4) })
}

func TestElement_String(t *testing.T) {
	require.Equal(t, "ragged_element([1 2])", NewElement([]int{1, 2}).String())
	require.Equal(t, missingText, MissingElement[int]().String())
}
