package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierec/internal/domain"
)

func movie(title, genre string, rating float64) domain.Movie {
	return domain.Movie{
		Title:       title,
		Genre:       genre,
		Year:        2000,
		Rating:      rating,
		Description: title + " description",
		Poster:      "https://example.com/" + title + ".jpg",
	}
}

func fixture(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]domain.Movie{
		movie("Alpha", "Sci-Fi Action", 8.0),
		movie("Bravo", "Drama", 9.0),
		movie("Charlie", "Crime Drama", 8.0),
		movie("Delta", "sci-fi adventure", 7.0),
		movie("Echo", "Drama Romance", 9.0),
	})
	require.NoError(t, err)
	return c
}

func titles(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestNew_Invalid(t *testing.T) {
	noPoster := movie("Alpha", "Drama", 8)
	noPoster.Poster = ""
	badRating := movie("Alpha", "Drama", 10.5)
	noYear := movie("Alpha", "Drama", 8)
	noYear.Year = 0

	tests := []struct {
		name   string
		movies []domain.Movie
	}{
		{"empty catalog", nil},
		{"duplicate title", []domain.Movie{movie("Alpha", "Drama", 8), movie("Alpha", "Crime", 7)}},
		{"missing field", []domain.Movie{noPoster}},
		{"rating out of range", []domain.Movie{badRating}},
		{"missing year", []domain.Movie{noYear}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.movies)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestCatalog_All(t *testing.T) {
	c := fixture(t)
	all := c.All()
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}, titles(all))
	assert.Equal(t, 5, c.Len())

	all[0].Title = "Mutated"
	assert.Equal(t, "Alpha", c.All()[0].Title, "All must return a copy")
}

func TestCatalog_FindByTitle(t *testing.T) {
	c := fixture(t)

	m, idx, err := c.FindByTitle("Charlie")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "Crime Drama", m.Genre)

	_, idx, err = c.FindByTitle("charlie")
	assert.ErrorIs(t, err, domain.ErrNotFound, "lookup is case-sensitive")
	assert.Equal(t, -1, idx)
}

func TestCatalog_TopByRating(t *testing.T) {
	c := fixture(t)

	assert.Equal(t, []string{"Bravo", "Echo", "Alpha"}, titles(c.TopByRating(3)))
	assert.Equal(t, []string{"Bravo", "Echo", "Alpha", "Charlie", "Delta"}, titles(c.TopByRating(100)))
	assert.Empty(t, c.TopByRating(0))
	assert.NotNil(t, c.TopByRating(-1))
}

func TestCatalog_ByGenreContains(t *testing.T) {
	c := fixture(t)

	assert.Equal(t, []string{"Alpha", "Delta"}, titles(c.ByGenreContains("SCI-FI", 5)))
	assert.Equal(t, []string{"Bravo", "Echo"}, titles(c.ByGenreContains("drama", 2)))
	assert.Equal(t, []string{"Bravo", "Echo", "Charlie"}, titles(c.ByGenreContains("Drama", 10)))

	none := c.ByGenreContains("Western", 5)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.Empty(t, c.ByGenreContains("Drama", 0))
}

func TestCatalog_Corpus(t *testing.T) {
	c := fixture(t)
	corpus := c.Corpus()
	require.Len(t, corpus, 5)
	assert.Equal(t, "Alpha Sci-Fi Action Alpha description", corpus[0])
}
