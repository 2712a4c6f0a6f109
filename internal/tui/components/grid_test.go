package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/genre"
	"github.com/mmcdole/podview/internal/search"
)

func podcasts(n int) []domain.PodcastSummary {
	out := make([]domain.PodcastSummary, n)
	for i := range out {
		out[i] = domain.PodcastSummary{ID: string(rune('a' + i)), Title: "Show " + string(rune('A'+i))}
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestGrid(columns int) Grid {
	g := NewGrid(genre.Default, columns, func() time.Time { return time.Unix(0, 0) })
	g.SetSize(200, 40)
	return g
}

func TestGridNavigation(t *testing.T) {
	g := newTestGrid(3)
	g.SetPodcasts(podcasts(7))

	g, _ = g.Update(runes("l"))
	assert.Equal(t, 1, g.Cursor())
	g, _ = g.Update(runes("j"))
	assert.Equal(t, 4, g.Cursor())
	g, _ = g.Update(runes("j"))
	assert.Equal(t, 4, g.Cursor(), "no card below in the last row's column")
	g, _ = g.Update(runes("h"))
	g, _ = g.Update(runes("j"))
	assert.Equal(t, 6, g.Cursor())
	g, _ = g.Update(runes("k"))
	assert.Equal(t, 3, g.Cursor())
	g, _ = g.Update(runes("G"))
	assert.Equal(t, 6, g.Cursor())
	g, _ = g.Update(runes("g"))
	assert.Equal(t, 0, g.Cursor())
	g, _ = g.Update(runes("h"))
	assert.Equal(t, 0, g.Cursor())
}

func TestGridSelectedOnEmpty(t *testing.T) {
	g := newTestGrid(0)
	_, ok := g.Selected()
	assert.False(t, ok)
	assert.Contains(t, g.View(), "No podcasts")
}

func TestGridAutoColumns(t *testing.T) {
	g := newTestGrid(0)
	w, _ := cardSize()
	g.SetSize(w*4+3, 40)
	assert.Equal(t, 4, g.Columns())

	g.SetSize(5, 40)
	assert.Equal(t, 1, g.Columns())
}

func TestGridSetPodcastsKeepsSelection(t *testing.T) {
	g := newTestGrid(3)
	items := podcasts(5)
	g.SetPodcasts(items)
	g.SetCursor(3)

	reversed := []domain.PodcastSummary{items[4], items[3], items[2], items[1], items[0]}
	g.SetPodcasts(reversed)
	p, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, items[3].ID, p.ID)
	assert.Equal(t, 1, g.Cursor())
}

func TestGridFilter(t *testing.T) {
	g := newTestGrid(3)
	g.SetPodcasts([]domain.PodcastSummary{
		{ID: "1", Title: "Something Was Wrong", Genres: []string{"History"}},
		{ID: "2", Title: "Kids Corner", Genres: []string{"Kids and Family"}},
	})

	g.ToggleFilter()
	require.True(t, g.IsFilterTyping())
	g, _ = g.Update(runes("kids"))
	assert.Equal(t, 1, g.Len())
	assert.Contains(t, g.View(), "[1/2]")

	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, g.IsFilterTyping())
	assert.True(t, g.IsFiltering())

	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, g.IsFiltering())
	assert.Equal(t, 2, g.Len())
}

func TestGridGenreFilter(t *testing.T) {
	g := newTestGrid(3)
	g.SetPodcasts([]domain.PodcastSummary{
		{ID: "1", Title: "Something Was Wrong", Genres: []string{"History"}},
		{ID: "2", Title: "Kids Corner", Genres: []string{"Kids and Family"}},
	})
	g.ToggleFilter()
	g, _ = g.Update(runes("genre:history"))

	require.Equal(t, 1, g.Len())
	p, _ := g.Selected()
	assert.Equal(t, "1", p.ID)
}

func TestGridFilterNoMatches(t *testing.T) {
	g := newTestGrid(3)
	g.SetPodcasts(podcasts(2))
	g.ToggleFilter()
	g, _ = g.Update(runes("zzz"))

	assert.Equal(t, 0, g.Len())
	assert.Contains(t, g.View(), "No matches")
}

func TestGridCardAt(t *testing.T) {
	g := newTestGrid(3)
	g.SetPodcasts(podcasts(4))
	w, h := cardSize()

	idx, ok := g.CardAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = g.CardAt(w+1, 1)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = g.CardAt(1, h+1)
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = g.CardAt(w+1, h+1)
	assert.False(t, ok, "row 1 only has one card")

	_, ok = g.CardAt(-1, 0)
	assert.False(t, ok)
}

func TestRenderCard(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	card := RenderCard(search.Match{Podcast: domain.PodcastSummary{
		Title:       "Something Was Wrong",
		ImageURL:    "https://content.production.cdn.art19.com/images/cover.jpeg",
		SeasonCount: 1,
		Genres:      []string{"Comedy", "History", "News"},
		UpdatedAt:   now.Add(-72 * time.Hour),
	}}, false, now)

	assert.Contains(t, card, "Something Was Wrong")
	assert.Contains(t, card, "cover.jpeg")
	assert.Contains(t, card, "1 Season")
	assert.Contains(t, card, "Comedy, History")
	assert.NotContains(t, card, "News")
	assert.Contains(t, card, "Updated 3 days ago")
}

func TestRenderCardUnknownUpdate(t *testing.T) {
	card := RenderCard(search.Match{Podcast: domain.PodcastSummary{Title: "X"}}, true, time.Now())
	assert.Contains(t, card, "Updated Unknown")
	assert.Contains(t, card, "no cover")
	assert.Contains(t, card, "0 Seasons")
}
