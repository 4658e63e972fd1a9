// Package similarity computes pairwise cosine similarity between fingerprints.
package similarity

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"movierec/internal/domain"
)

// Match is one ranked cell of a similarity row.
type Match struct {
	Index int
	Score float64
}

// Matrix is an immutable square matrix of cosine similarities.
type Matrix struct {
	n     int
	cells []float64
}

// NewMatrix computes every pairwise cosine similarity between vectors.
// All vectors must share one dimension.
func NewMatrix(vectors [][]float64) (*Matrix, error) {
	n := len(vectors)
	if n == 0 {
		return nil, errors.New("no vectors")
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d: dimension %d, want %d", i, len(v), dim)
		}
	}
	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = math.Sqrt(dot(v, v))
	}
	m := &Matrix{n: n, cells: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := 0.0
			if norms[i] > 0 && norms[j] > 0 {
				s = dot(vectors[i], vectors[j]) / (norms[i] * norms[j])
			}
			if i == j && s > 0 {
				s = 1.0
			}
			m.cells[i*n+j] = s
			m.cells[j*n+i] = s
		}
	}
	return m, nil
}

// Build prepares the embedder on texts, embeds each one, and returns the
// similarity matrix of the results.
func Build(texts []string, embedder domain.Embedder) (*Matrix, error) {
	if err := embedder.Prepare(texts); err != nil {
		return nil, fmt.Errorf("prepare %s embedder: %w", embedder.Name(), err)
	}
	vectors := make([][]float64, len(texts))
	for i, t := range texts {
		v, err := embedder.Embed(t)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		vectors[i] = v
	}
	return NewMatrix(vectors)
}

// Size returns the number of rows.
func (m *Matrix) Size() int { return m.n }

// At returns the similarity between items i and j.
func (m *Matrix) At(i, j int) float64 { return m.cells[i*m.n+j] }

// Ranked returns row i ordered by score descending. Equal scores keep
// ascending index order.
func (m *Matrix) Ranked(i int) []Match {
	if i < 0 || i >= m.n {
		return nil
	}
	row := make([]Match, m.n)
	for j := 0; j < m.n; j++ {
		row[j] = Match{Index: j, Score: m.At(i, j)}
	}
	sort.SliceStable(row, func(a, b int) bool { return row[a].Score > row[b].Score })
	return row
}

// Cosine returns dot(a,b)/(|a||b|), or 0 when either norm is zero.
func Cosine(a, b []float64) float64 {
	na := math.Sqrt(dot(a, a))
	nb := math.Sqrt(dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
