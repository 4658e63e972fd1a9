package count

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder_Prepare(t *testing.T) {
	e := NewEmbedder()
	assert.Equal(t, "count", e.Name())

	require.Error(t, e.Prepare(nil))
	require.Error(t, e.Prepare([]string{"the a of"}))

	require.NoError(t, e.Prepare([]string{"red apple apple", "green apple"}))
	assert.Equal(t, 3, e.Dimension())
	assert.Equal(t, []string{"apple", "green", "red"}, e.Vocabulary())
}

func TestEmbedder_Embed(t *testing.T) {
	e := NewEmbedder()
	_, err := e.Embed("apple")
	require.Error(t, err, "embedding before prepare must fail")

	require.NoError(t, e.Prepare([]string{"red apple apple", "green apple"}))

	v, err := e.Embed("red apple apple")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 1}, v)

	v, err = e.Embed("Banana and APPLE")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, v, "unknown tokens are ignored and case is folded")

	v, err = e.Embed("")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, v)
}

func TestEmbedder_UnicodeVocabulary(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"Amélie Drama", "Léon: The Professional Crime"}))
	assert.Equal(t, []string{"amélie", "crime", "drama", "léon", "professional"}, e.Vocabulary())

	v, err := e.Embed("LÉON léon")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 2, 0}, v)
}
