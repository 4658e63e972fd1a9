package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"movierec/internal/catalog"
	"movierec/internal/domain"
	"movierec/internal/similarity"
)

const (
	// DefaultTopN is the result count for similar and genre queries.
	DefaultTopN = 5
	// DefaultTopRated is the result count for the top-rated view.
	DefaultTopRated = 10
)

// DefaultGenres is the genre menu offered to users.
var DefaultGenres = []string{"Sci-Fi", "Drama", "Action", "Crime", "Adventure", "Superhero"}

// RecommenderImpl answers similarity and rating queries over a catalog.
// It is immutable after construction and safe for concurrent use.
type RecommenderImpl struct {
	catalog *catalog.Catalog
	matrix  *similarity.Matrix
	log     zerolog.Logger
}

// NewRecommender fingerprints every catalog record with embedder and
// precomputes their similarity matrix.
func NewRecommender(c *catalog.Catalog, embedder domain.Embedder, log zerolog.Logger) (*RecommenderImpl, error) {
	m, err := similarity.Build(c.Corpus(), embedder)
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}
	log.Info().
		Str("embedder", embedder.Name()).
		Int("movies", c.Len()).
		Int("vocabulary", embedder.Dimension()).
		Msg("recommender ready")
	return &RecommenderImpl{catalog: c, matrix: m, log: log}, nil
}

// Movies returns the whole catalog in order.
func (r *RecommenderImpl) Movies() []domain.Movie { return r.catalog.All() }

// Matrix exposes the precomputed similarity matrix.
func (r *RecommenderImpl) Matrix() *similarity.Matrix { return r.matrix }

// RecommendSimilar returns up to topN movies most similar to title.
// Unknown titles yield an empty result.
func (r *RecommenderImpl) RecommendSimilar(title string, topN int) []domain.Movie {
	scored := r.SimilarScored(title, topN)
	out := make([]domain.Movie, len(scored))
	for i, s := range scored {
		out[i] = s.Movie
	}
	return out
}

// SimilarScored is RecommendSimilar with the similarity score of each result.
//
// The first ranked slot is dropped rather than the query movie itself. When
// another movie ties the query at the top score and has a lower catalog
// index, that movie is dropped and the query movie is returned instead.
func (r *RecommenderImpl) SimilarScored(title string, topN int) []domain.ScoredMovie {
	if topN <= 0 {
		return []domain.ScoredMovie{}
	}
	_, idx, err := r.catalog.FindByTitle(title)
	if err != nil {
		r.log.Debug().Str("title", title).Msg("similar query for unknown title")
		return []domain.ScoredMovie{}
	}
	ranked := r.matrix.Ranked(idx)[1:]
	if topN > len(ranked) {
		topN = len(ranked)
	}
	out := make([]domain.ScoredMovie, topN)
	for i, m := range ranked[:topN] {
		out[i] = domain.ScoredMovie{Movie: r.catalog.At(m.Index), Score: m.Score}
	}
	return out
}

// RecommendByGenre returns the top rated movies whose genre contains genre.
func (r *RecommenderImpl) RecommendByGenre(genre string, topN int) []domain.Movie {
	return r.catalog.ByGenreContains(genre, topN)
}

// TopRated returns the n highest rated movies.
func (r *RecommenderImpl) TopRated(n int) []domain.Movie {
	return r.catalog.TopByRating(n)
}
