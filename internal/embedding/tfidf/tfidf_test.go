package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder(t *testing.T) {
	e := NewEmbedder()
	assert.Equal(t, "tfidf", e.Name())

	_, err := e.Embed("anything")
	require.Error(t, err)

	require.NoError(t, e.Prepare([]string{"red apple", "green apple", "blue sky"}))
	assert.Equal(t, 5, e.Dimension())

	v, err := e.Embed("red apple")
	require.NoError(t, err)
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)

	// "red" is rarer than "apple" so it must weigh more.
	// vocabulary order: apple, blue, green, red, sky
	assert.Greater(t, v[3], v[0])

	v, err = e.Embed("unknown words only")
	require.NoError(t, err)
	for _, x := range v {
		assert.Zero(t, x)
	}
}

func TestEmbedder_IDF(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"red apple", "green apple", "blue sky"}))

	// n=3: apple appears in 2 texts, red in 1
	assert.InDelta(t, math.Log(4.0/3.0)+1, e.IDF("apple"), 1e-12)
	assert.InDelta(t, math.Log(4.0/2.0)+1, e.IDF("red"), 1e-12)
	assert.Zero(t, e.IDF("banana"))
}

func TestEmbedder_RepeatedTermsKeepDirection(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"red apple", "green apple", "blue sky"}))

	once, err := e.Embed("red apple")
	require.NoError(t, err)
	twice, err := e.Embed("red red apple apple")
	require.NoError(t, err)
	assert.InDeltaSlice(t, once, twice, 1e-12)
}
