// Package tfidf weights the bag-of-words fingerprint by how rare each term
// is across the catalog. Words shared by many records (a common genre, say)
// count for less than the same raw count fingerprint would give them.
package tfidf

import (
	"errors"
	"math"

	"movierec/internal/embedding/count"
)

// Embedder scales count fingerprints by smoothed inverse document
// frequency and L2-normalizes the result.
type Embedder struct {
	counts   *count.Embedder
	idf      []float64
	index    map[string]int
	prepared bool
}

// NewEmbedder creates an unprepared TF-IDF embedder.
func NewEmbedder() *Embedder {
	return &Embedder{counts: count.NewEmbedder()}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "tfidf" }

// Prepare builds the count vocabulary and the IDF of each term:
// ln((1+n)/(1+df)) + 1 over n corpus texts.
func (e *Embedder) Prepare(corpus []string) error {
	if err := e.counts.Prepare(corpus); err != nil {
		return err
	}
	df := make([]int, e.counts.Dimension())
	for _, text := range corpus {
		vec, err := e.counts.Embed(text)
		if err != nil {
			return err
		}
		for i, c := range vec {
			if c > 0 {
				df[i]++
			}
		}
	}
	n := float64(len(corpus))
	e.idf = make([]float64, len(df))
	for i, d := range df {
		e.idf[i] = math.Log((1+n)/(1+float64(d))) + 1.0
	}
	terms := e.counts.Vocabulary()
	e.index = make(map[string]int, len(terms))
	for i, term := range terms {
		e.index[term] = i
	}
	e.prepared = true
	return nil
}

// Dimension returns the dimensionality of the produced embedding vectors.
func (e *Embedder) Dimension() int { return e.counts.Dimension() }

// IDF returns the weight of term, or 0 when it is not in the vocabulary.
func (e *Embedder) IDF(term string) float64 {
	i, ok := e.index[term]
	if !ok {
		return 0
	}
	return e.idf[i]
}

// Embed computes the unit-length TF-IDF vector for text. Text with no
// vocabulary terms yields the zero vector.
func (e *Embedder) Embed(text string) ([]float64, error) {
	if !e.prepared {
		return nil, errors.New("tfidf embedder not prepared")
	}
	vec, err := e.counts.Embed(text)
	if err != nil {
		return nil, err
	}
	norm := 0.0
	for i, c := range vec {
		vec[i] = c * e.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}
