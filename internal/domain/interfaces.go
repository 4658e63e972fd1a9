package domain

import "errors"

var (
	// ErrNotFound is returned when no catalog record has the requested title.
	ErrNotFound = errors.New("movie not found")
	// ErrInvalidCatalog is returned when catalog records break construction invariants.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Movie is a single immutable catalog record. Title identifies it.
type Movie struct {
	Title       string  `yaml:"title" json:"title" db:"title" validate:"required"`
	Genre       string  `yaml:"genre" json:"genre" db:"genre" validate:"required"`
	Year        int     `yaml:"year" json:"year" db:"year" validate:"gt=0"`
	Rating      float64 `yaml:"rating" json:"rating" db:"rating" validate:"gte=0,lte=10"`
	Description string  `yaml:"description" json:"description" db:"description" validate:"required"`
	Poster      string  `yaml:"poster" json:"poster" db:"poster" validate:"required"`
}

// ScoredMovie pairs a recommended movie with its similarity score.
type ScoredMovie struct {
	Movie Movie   `json:"movie"`
	Score float64 `json:"score"`
}

// Loader yields the ordered catalog records from some data source.
type Loader interface {
	Name() string
	Load() ([]Movie, error)
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// Recommender defines the queries exposed by the application core.
type Recommender interface {
	Movies() []Movie
	RecommendSimilar(title string, topN int) []Movie
	SimilarScored(title string, topN int) []ScoredMovie
	RecommendByGenre(genre string, topN int) []Movie
	TopRated(n int) []Movie
}
