package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movierec/internal/domain"
)

type mode int

const (
	modeSimilar mode = iota
	modeGenre
	modeTop
)

var modeNames = []string{"Similar Movies", "By Genre", "Top Rated"}

// Limits are the result counts requested per mode.
type Limits struct {
	Similar  int
	Genre    int
	TopRated int
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  domain.Recommender
	limits   Limits
	genres   []string
	titles   []string
	mode     mode
	cursor   int
	genreIdx int
	input    textinput.Model
	viewport viewport.Model
	results  []domain.ScoredMovie
	scored   bool
	heading  string
	status   string
	ready    bool
}

// New creates a new TUI model instance.
func New(service domain.Recommender, genres []string, limits Limits) Model {
	movies := service.Movies()
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	ti := textinput.New()
	ti.Prompt = "Genre: "
	ti.Placeholder = "type a genre or use ←/→"
	ti.CharLimit = 40
	if len(genres) > 0 {
		ti.SetValue(genres[0])
	}
	return Model{
		service:  service,
		limits:   limits,
		genres:   genres,
		titles:   titles,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Tab switches mode, Enter recommends, Ctrl+C quits.",
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		reserved := 6 // header, tabs, selector, spacer, status
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			m.setMode((m.mode + 1) % 3)
			return m, nil
		case "shift+tab":
			m.setMode((m.mode + 2) % 3)
			return m, nil
		case "enter":
			m.run()
			return m, nil
		case "up":
			if m.mode == modeSimilar && len(m.titles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.titles)) % len(m.titles)
				return m, nil
			}
		case "down":
			if m.mode == modeSimilar && len(m.titles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.titles)
				return m, nil
			}
		case "left", "right":
			if m.mode == modeGenre && len(m.genres) > 0 {
				step := 1
				if msg.String() == "left" {
					step = len(m.genres) - 1
				}
				m.genreIdx = (m.genreIdx + step) % len(m.genres)
				m.input.SetValue(m.genres[m.genreIdx])
				m.input.CursorEnd()
				return m, nil
			}
		}
		if m.mode != modeGenre {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setMode(next mode) {
	m.mode = next
	if next == modeGenre {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	if next == modeTop {
		m.run()
	}
}

func (m *Model) run() {
	switch m.mode {
	case modeSimilar:
		if len(m.titles) == 0 {
			return
		}
		title := m.titles[m.cursor]
		m.results = m.service.SimilarScored(title, m.limits.Similar)
		m.scored = true
		m.heading = "Movies Similar to " + title
	case modeGenre:
		genre := strings.TrimSpace(m.input.Value())
		if genre == "" {
			m.status = "Enter a genre first."
			return
		}
		m.results = unscored(m.service.RecommendByGenre(genre, m.limits.Genre))
		m.scored = false
		m.heading = "Top " + genre + " Movies"
	case modeTop:
		m.results = unscored(m.service.TopRated(m.limits.TopRated))
		m.scored = false
		m.heading = "Top Rated Movies"
	}
	m.status = fmt.Sprintf("%d result(s)", len(m.results))
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

// View renders the TUI layout and current results.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Movie Recommendation Portal")
	results := resultBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + m.renderTabs() + "\n" + m.renderSelector() + "\n" + results + "\n" + status
}

func (m Model) renderTabs() string {
	parts := make([]string, len(modeNames))
	for i, name := range modeNames {
		if mode(i) == m.mode {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderSelector() string {
	switch m.mode {
	case modeSimilar:
		if len(m.titles) == 0 {
			return "No movies."
		}
		return fmt.Sprintf("Movie (↑/↓): %s  [%d/%d]", highlightStyle.Render(m.titles[m.cursor]), m.cursor+1, len(m.titles))
	case modeGenre:
		return m.input.View()
	default:
		return fmt.Sprintf("Showing the %d highest rated movies.", m.limits.TopRated)
	}
}

func (m Model) renderResults() string {
	if m.heading == "" {
		return "No results yet."
	}
	var b strings.Builder
	b.WriteString(highlightStyle.Render(m.heading))
	b.WriteString("\n\n")
	if len(m.results) == 0 {
		b.WriteString("Nothing matched.")
		return b.String()
	}
	for i, r := range m.results {
		fmt.Fprintf(&b, "%2d. %s (%d)\n", i+1, r.Movie.Title, r.Movie.Year)
		fmt.Fprintf(&b, "    Genre: %s  Rating: %.1f", r.Movie.Genre, r.Movie.Rating)
		if m.scored {
			fmt.Fprintf(&b, "  Similarity: %.3f", r.Score)
		}
		b.WriteString("\n")
		b.WriteString(captionStyle.Render("    " + r.Movie.Poster))
		b.WriteString("\n")
	}
	return b.String()
}

func unscored(movies []domain.Movie) []domain.ScoredMovie {
	out := make([]domain.ScoredMovie, len(movies))
	for i, mv := range movies {
		out[i] = domain.ScoredMovie{Movie: mv}
	}
	return out
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	captionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
