package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierec/internal/embedding/count"
)

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix([][]float64{{1, 0}, {0, 1}, {1, 1}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 4, m.Size())

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(2, 2))
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.InDelta(t, 1/math.Sqrt2, m.At(0, 2), 1e-12)
	assert.Equal(t, 0.0, m.At(3, 3), "zero fingerprint is similar to nothing")
	assert.Equal(t, 0.0, m.At(3, 2))

	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i))
		}
	}
}

func TestNewMatrix_Errors(t *testing.T) {
	_, err := NewMatrix(nil)
	assert.Error(t, err)

	_, err = NewMatrix([][]float64{{1, 0}, {1}})
	assert.Error(t, err)
}

func TestMatrix_Ranked(t *testing.T) {
	m, err := NewMatrix([][]float64{{1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)

	got := m.Ranked(2)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, 1.0, got[0].Score)
	// equal scores keep ascending index order
	assert.Equal(t, 0, got[1].Index)
	assert.Equal(t, 1, got[2].Index)

	assert.Nil(t, m.Ranked(-1))
	assert.Nil(t, m.Ranked(3))
}

func TestCosine(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2}, []float64{2, 4}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 3}), 1e-12)
}

func TestBuild(t *testing.T) {
	m, err := Build([]string{"red apple", "green apple", "blue sky"}, count.NewEmbedder())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m.At(0, 1), 1e-12)
	assert.Equal(t, 0.0, m.At(0, 2))

	_, err = Build(nil, count.NewEmbedder())
	assert.Error(t, err)
}
