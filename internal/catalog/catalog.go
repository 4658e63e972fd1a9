// Package catalog holds the fixed, ordered movie list and its rating queries.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"movierec/internal/domain"
	"movierec/internal/validation"
)

// Catalog is an immutable ordered collection of movies.
type Catalog struct {
	movies  []domain.Movie
	byTitle map[string]int
}

// New validates movies and builds a catalog preserving their order.
// Duplicate titles or incomplete records fail with domain.ErrInvalidCatalog.
func New(movies []domain.Movie) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: no movies", domain.ErrInvalidCatalog)
	}
	c := &Catalog{
		movies:  make([]domain.Movie, len(movies)),
		byTitle: make(map[string]int, len(movies)),
	}
	copy(c.movies, movies)
	for i, m := range c.movies {
		if err := validation.Struct(m); err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %v", domain.ErrInvalidCatalog, i, m.Title, err)
		}
		if prev, ok := c.byTitle[m.Title]; ok {
			return nil, fmt.Errorf("%w: duplicate title %q at records %d and %d", domain.ErrInvalidCatalog, m.Title, prev, i)
		}
		c.byTitle[m.Title] = i
	}
	return c, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.movies) }

// All returns every record in insertion order.
func (c *Catalog) All() []domain.Movie {
	out := make([]domain.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// At returns the record at index i.
func (c *Catalog) At(i int) domain.Movie { return c.movies[i] }

// FindByTitle looks up a record by exact, case-sensitive title.
func (c *Catalog) FindByTitle(title string) (domain.Movie, int, error) {
	i, ok := c.byTitle[title]
	if !ok {
		return domain.Movie{}, -1, fmt.Errorf("%w: %q", domain.ErrNotFound, title)
	}
	return c.movies[i], i, nil
}

// TopByRating returns up to n records by rating descending, ties in
// insertion order.
func (c *Catalog) TopByRating(n int) []domain.Movie {
	return topByRating(c.movies, n)
}

// ByGenreContains returns up to n records whose genre contains substr
// (case-insensitive), by rating descending.
func (c *Catalog) ByGenreContains(substr string, n int) []domain.Movie {
	if n <= 0 {
		return []domain.Movie{}
	}
	needle := strings.ToLower(substr)
	var matched []domain.Movie
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.Genre), needle) {
			matched = append(matched, m)
		}
	}
	return topByRating(matched, n)
}

// Corpus returns the text fingerprinted for each record, in order.
func (c *Catalog) Corpus() []string {
	out := make([]string, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.Title + " " + m.Genre + " " + m.Description
	}
	return out
}

func topByRating(movies []domain.Movie, n int) []domain.Movie {
	if n <= 0 {
		return []domain.Movie{}
	}
	sorted := make([]domain.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
