package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_Deterministic(t *testing.T) {
	a := Values([]int64{1, 2, 3})
	b := Values([]int64{1, 2, 3})

	require.Equal(t, a, b)
	require.NotEqual(t, a, Values([]int64{1, 2, 4}))
	require.NotEqual(t, a, Values([]int64{3, 2, 1}))
	require.NotEqual(t, a, Values([]int64{1, 2}))
}

func TestValues_Missing(t *testing.T) {
	require.Equal(t, Missing, Values[float64](nil))
	require.Equal(t, Missing, Values([]uint8{}))
	require.NotEqual(t, Missing, Values([]uint8{0}))
}

func TestValues_FloatCanonicalization(t *testing.T) {
	assert.Equal(t, Values([]float64{0}), Values([]float64{math.Copysign(0, -1)}))
	assert.Equal(t, Values([]float64{math.NaN(), 1}), Values([]float64{math.NaN(), 1}))
}

func TestValues_LargeElement(t *testing.T) {
	big := make([]float64, 100_000)
	for i := range big {
		big[i] = float64(i)
	}

	require.Equal(t, Values(big), Values(big))
}
