package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierec/internal/catalog"
	"movierec/internal/embedding/count"
	"movierec/internal/service"
	"movierec/internal/source/builtin"
)

func newModel(t *testing.T) Model {
	t.Helper()
	movies, err := builtin.NewLoader().Load()
	require.NoError(t, err)
	c, err := catalog.New(movies)
	require.NoError(t, err)
	rec, err := service.NewRecommender(c, count.NewEmbedder(), zerolog.Nop())
	require.NoError(t, err)
	m := New(rec, service.DefaultGenres, Limits{Similar: 5, Genre: 5, TopRated: 10})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func press(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func TestModel_SimilarMode(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, "Loading...", New(m.service, nil, m.limits).View())

	m = press(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)
	m = press(m, tea.KeyUp)
	m = press(m, tea.KeyUp)
	assert.Equal(t, len(m.titles)-1, m.cursor, "cursor wraps around")
	m = press(m, tea.KeyDown)

	m = press(m, tea.KeyEnter)
	require.Len(t, m.results, 5)
	assert.True(t, m.scored)
	for _, r := range m.results {
		assert.NotEqual(t, "The Shawshank Redemption", r.Movie.Title)
	}
	assert.Contains(t, m.View(), "Movies Similar to The Shawshank Redemption")
}

func TestModel_GenreMode(t *testing.T) {
	m := newModel(t)
	m = press(m, tea.KeyTab)
	assert.Equal(t, modeGenre, m.mode)
	assert.Equal(t, "Sci-Fi", m.input.Value())

	m = press(m, tea.KeyEnter)
	require.Len(t, m.results, 5)
	assert.Equal(t, "Inception", m.results[0].Movie.Title)
	assert.False(t, m.scored)

	m = press(m, tea.KeyRight)
	assert.Equal(t, "Drama", m.input.Value())
	m = press(m, tea.KeyLeft)
	m = press(m, tea.KeyLeft)
	assert.Equal(t, "Superhero", m.input.Value())

	m.input.SetValue("western")
	m = press(m, tea.KeyEnter)
	assert.Empty(t, m.results)
	assert.Contains(t, m.renderResults(), "Nothing matched.")
}

func TestModel_TopRatedMode(t *testing.T) {
	m := newModel(t)
	m = press(m, tea.KeyShiftTab)
	assert.Equal(t, modeTop, m.mode)
	require.Len(t, m.results, 10)
	assert.Equal(t, "The Shawshank Redemption", m.results[0].Movie.Title)
	assert.Equal(t, "The Godfather", m.results[1].Movie.Title)

	m = press(m, tea.KeyTab)
	assert.Equal(t, modeSimilar, m.mode)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
